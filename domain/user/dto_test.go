package user

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leavedesk/leavedesk-client-go/validator"
)

func TestUpdateProfileValidateOK(t *testing.T) {
	req := UpdateProfileRequest{Name: "Alice Staff", Email: "alice@example.com"}
	assert.NoError(t, req.Validate())
}

func TestUpdateProfileValidateFailures(t *testing.T) {
	cases := []struct {
		name  string
		req   UpdateProfileRequest
		field string
	}{
		{
			"missing name",
			UpdateProfileRequest{Email: "alice@example.com"},
			"name",
		},
		{
			"missing email",
			UpdateProfileRequest{Name: "Alice Staff"},
			"email",
		},
		{
			"malformed email",
			UpdateProfileRequest{Name: "Alice Staff", Email: "alice-at-example"},
			"email",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.req.Validate()
			require.Error(t, err)
			var verrs validator.ValidationErrors
			require.True(t, errors.As(err, &verrs))
			assert.Contains(t, verrs.ToMap(), c.field)
		})
	}
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleStaff.Valid())
	assert.True(t, RoleManager.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("SUPERUSER").Valid())
	assert.False(t, Role("staff").Valid())
}

func TestNormalizeRole(t *testing.T) {
	assert.Equal(t, RoleManager, NormalizeRole("manager"))
	assert.Equal(t, RoleStaff, NormalizeRole(" Staff "))
}
