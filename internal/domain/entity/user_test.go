package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_BeforeSave_HashesPlaintext(t *testing.T) {
	user := &User{
		Username: "admin",
		Email:    "admin@school.test",
		Password: "SecretPass1!",
	}

	err := user.BeforeSave(nil)
	require.NoError(t, err)

	assert.NotEqual(t, "SecretPass1!", user.Password)
	assert.True(t, strings.HasPrefix(user.Password, "$2a$"))
	assert.True(t, user.CheckPassword("SecretPass1!"))
	assert.False(t, user.CheckPassword("wrong"))
}

func TestUser_BeforeSave_SkipsExistingHash(t *testing.T) {
	user := &User{Password: "plain"}
	require.NoError(t, user.BeforeSave(nil))
	hashed := user.Password

	// A second save must not double-hash.
	require.NoError(t, user.BeforeSave(nil))
	assert.Equal(t, hashed, user.Password)
	assert.True(t, user.CheckPassword("plain"))
}

func TestUser_IsAdmin(t *testing.T) {
	assert.True(t, (&User{Role: RoleAdmin}).IsAdmin())
	assert.False(t, (&User{Role: RoleStaff}).IsAdmin())
	assert.False(t, (&User{}).IsAdmin())
}
