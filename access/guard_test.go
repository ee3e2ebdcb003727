package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leavedesk/leavedesk-client-go/domain/user"
)

func testUser(role user.Role) *user.User {
	return &user.User{ID: "u1", Role: role, ProfileComplete: true}
}

func TestEvaluateUnauthenticated(t *testing.T) {
	policy := DefaultPolicy()

	result := policy.Evaluate(false, nil, "/leave/new")
	assert.Equal(t, RedirectLogin, result.Decision)
	assert.Equal(t, "/leave/new", result.ReturnPath)
}

func TestEvaluateRoleGate(t *testing.T) {
	policy := DefaultPolicy()

	cases := []struct {
		name string
		role user.Role
		path string
		want Decision
	}{
		{"staff denied approvals", user.RoleStaff, "/approvals", RedirectHome},
		{"manager allowed approvals", user.RoleManager, "/approvals", Allow},
		{"admin allowed approvals", user.RoleAdmin, "/approvals", Allow},
		{"staff allowed home", user.RoleStaff, "/", Allow},
		{"staff allowed leave", user.RoleStaff, "/leave", Allow},
		{"staff allowed leave subpath", user.RoleStaff, "/leave/new", Allow},
		{"staff denied reports", user.RoleStaff, "/reports", RedirectHome},
		{"manager denied departments", user.RoleManager, "/departments", RedirectHome},
		{"admin allowed departments", user.RoleAdmin, "/departments", Allow},
		{"manager allowed teams", user.RoleManager, "/teams", Allow},
		{"unknown path allowed", user.RoleStaff, "/whatever", Allow},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			result := policy.Evaluate(true, testUser(c.role), c.path)
			assert.Equal(t, c.want, result.Decision)
			if c.want == RedirectHome {
				assert.NotEmpty(t, result.Notice)
			}
		})
	}
}

func TestEvaluateProfileSetupExemption(t *testing.T) {
	policy := DefaultPolicy()
	incomplete := &user.User{ID: "u2", Role: user.RoleStaff, ProfileComplete: false}

	result := policy.Evaluate(true, incomplete, "/profile/setup")
	assert.Equal(t, Allow, result.Decision)

	// Off the setup path the normal role check applies
	result = policy.Evaluate(true, incomplete, "/approvals")
	assert.Equal(t, RedirectHome, result.Decision)
}

func TestEvaluateExactMatchOnRoot(t *testing.T) {
	// "/" must not prefix-match every path; unknown paths fall through
	policy := NewPolicy([]Rule{
		{Pattern: "/", Roles: []user.Role{user.RoleAdmin}},
	}, "/profile/setup")

	denied := policy.Evaluate(true, testUser(user.RoleStaff), "/")
	assert.Equal(t, RedirectHome, denied.Decision)

	other := policy.Evaluate(true, testUser(user.RoleStaff), "/other")
	assert.Equal(t, Allow, other.Decision)
}
