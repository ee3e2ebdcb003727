package session

import (
	"log/slog"
	"sync"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Watcher periodically inspects the session token's expiry claim. It
// warns once when the remaining lifetime enters the warning window and
// clears the session when the token has expired. The watcher owns its
// interval handle; Start is idempotent and the loop stops itself once
// no token is present.
type Watcher struct {
	store      *Store
	warnWindow time.Duration
	interval   time.Duration
	onWarn     func(remaining time.Duration)
	onExpire   func()
	logger     *slog.Logger

	mu      sync.Mutex
	stop    chan struct{}
	warned  bool
	running bool
}

// NewWatcher builds a watcher. onWarn receives the remaining token
// lifetime; onExpire is the forced-logout hook (navigation analogue).
// Either callback may be nil.
func NewWatcher(store *Store, warnWindow, interval time.Duration, onWarn func(time.Duration), onExpire func(), logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		store:      store,
		warnWindow: warnWindow,
		interval:   interval,
		onWarn:     onWarn,
		onExpire:   onExpire,
		logger:     logger,
	}
}

// Start launches the watch loop. Calling Start on a running watcher is
// a no-op, so duplicate intervals cannot exist.
func (w *Watcher) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return
	}
	w.running = true
	w.warned = false
	w.stop = make(chan struct{})

	go w.run(w.stop)
}

// Stop halts the watch loop. Safe to call on a stopped watcher.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.stopLocked()
}

func (w *Watcher) stopLocked() {
	if !w.running {
		return
	}
	w.running = false
	close(w.stop)
}

// Running reports whether the watch loop is active
func (w *Watcher) Running() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

func (w *Watcher) run(stop chan struct{}) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if !w.tick(time.Now()) {
				w.Stop()
				return
			}
		}
	}
}

// tick performs one expiry check. It returns false when the loop
// should end: no token to watch, or the token already expired.
func (w *Watcher) tick(now time.Time) bool {
	token := w.store.Token()
	if token == "" {
		return false
	}

	expiry, ok := tokenExpiry(token)
	if !ok {
		// A token without a parsable exp claim cannot be watched
		w.logger.Warn("session token has no parsable expiry claim")
		return false
	}

	remaining := expiry.Sub(now)
	if remaining <= 0 {
		w.logger.Info("session token expired, clearing session")
		if err := w.store.Logout(); err != nil {
			w.logger.Error("failed to clear expired session", "error", err)
		}
		if w.onExpire != nil {
			w.onExpire()
		}
		return false
	}

	if remaining <= w.warnWindow {
		w.mu.Lock()
		alreadyWarned := w.warned
		w.warned = true
		w.mu.Unlock()
		if !alreadyWarned {
			w.logger.Info("session token expiring soon", "remaining", remaining)
			if w.onWarn != nil {
				w.onWarn(remaining)
			}
		}
	}
	return true
}

// tokenExpiry decodes the exp claim without verifying the signature.
// The client holds no signing key; validation is the backend's job.
func tokenExpiry(token string) (time.Time, bool) {
	parsed, err := jwt.Parse([]byte(token), jwt.WithVerify(false), jwt.WithValidate(false))
	if err != nil {
		return time.Time{}, false
	}
	expiry := parsed.Expiration()
	if expiry.IsZero() {
		return time.Time{}, false
	}
	return expiry, true
}
