package access

import (
	"strings"

	"github.com/leavedesk/leavedesk-client-go/domain/user"
)

// Decision is the guard's verdict for a route request
type Decision int

const (
	// Allow renders the requested route
	Allow Decision = iota
	// RedirectLogin sends the user to the login route, preserving the
	// originating path for post-login return
	RedirectLogin
	// RedirectHome sends the user to "/" with a denial notice
	RedirectHome
)

// Result carries the decision plus its redirect payload
type Result struct {
	Decision   Decision
	ReturnPath string // set for RedirectLogin
	Notice     string // set for RedirectHome
}

// Rule maps a path pattern to the roles allowed on it. "/" matches
// exactly; any other pattern matches as a prefix.
type Rule struct {
	Pattern string
	Roles   []user.Role
}

// Policy is an ordered rule table evaluated first-match
type Policy struct {
	rules            []Rule
	profileSetupPath string
}

// NewPolicy builds a policy from an ordered rule table
func NewPolicy(rules []Rule, profileSetupPath string) *Policy {
	return &Policy{rules: rules, profileSetupPath: profileSetupPath}
}

// DefaultPolicy is the application's route table
func DefaultPolicy() *Policy {
	all := []user.Role{user.RoleStaff, user.RoleManager, user.RoleAdmin}
	elevated := []user.Role{user.RoleManager, user.RoleAdmin}
	adminOnly := []user.Role{user.RoleAdmin}

	return NewPolicy([]Rule{
		{Pattern: "/", Roles: all},
		{Pattern: "/leave", Roles: all},
		{Pattern: "/calendar", Roles: all},
		{Pattern: "/notifications", Roles: all},
		{Pattern: "/profile", Roles: all},
		{Pattern: "/approvals", Roles: elevated},
		{Pattern: "/reports", Roles: elevated},
		{Pattern: "/admin", Roles: adminOnly},
		{Pattern: "/departments", Roles: adminOnly},
		{Pattern: "/teams", Roles: elevated},
		{Pattern: "/users", Roles: adminOnly},
	}, "/profile/setup")
}

// Evaluate decides whether the current user may visit path. It is a
// pure function of its inputs and only a UI gate; the backend
// authorizes every call independently.
func (p *Policy) Evaluate(authenticated bool, current *user.User, path string) Result {
	if !authenticated && current == nil {
		return Result{Decision: RedirectLogin, ReturnPath: path}
	}

	// Profile-incomplete users may only finish setup; the role check
	// does not apply on the setup path itself.
	if current != nil && !current.ProfileComplete && strings.HasPrefix(path, p.profileSetupPath) {
		return Result{Decision: Allow}
	}

	rule, ok := p.match(path)
	if !ok {
		return Result{Decision: Allow}
	}

	role := user.Role("")
	if current != nil {
		role = current.Role
	}
	for _, allowed := range rule.Roles {
		if role == allowed {
			return Result{Decision: Allow}
		}
	}
	return Result{Decision: RedirectHome, Notice: "You do not have access to this page"}
}

func (p *Policy) match(path string) (Rule, bool) {
	for _, rule := range p.rules {
		if rule.Pattern == "/" {
			if path == "/" {
				return rule, true
			}
			continue
		}
		if strings.HasPrefix(path, rule.Pattern) {
			return rule, true
		}
	}
	return Rule{}, false
}
