package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rakafirdaus/go-blog-api/pkg/helpers"
)

func newAuthService() (*AuthService, *memUserRepo) {
	users := newMemUserRepo()
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	return NewAuthService(users, jwt, nil), users
}

func TestAuthService_Register(t *testing.T) {
	svc, _ := newAuthService()

	res, err := svc.Register(context.Background(), "alice@example.com", "pw123", "/uploads/a.png")
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)
	assert.NotEmpty(t, res.User.ID)
	assert.Equal(t, "alice@example.com", res.User.Email)
	assert.Equal(t, "/uploads/a.png", res.User.ProfileImage)

	// The token is bound to the new user's id.
	claims, err := svc.JWT.Parse(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, claims.UserID)
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	svc, users := newAuthService()

	cases := []struct {
		name, email, password, image string
	}{
		{"no email", "", "pw123", "/uploads/a.png"},
		{"no password", "alice@example.com", "", "/uploads/a.png"},
		{"no image", "alice@example.com", "pw123", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tc.email, tc.password, tc.image)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
	assert.Equal(t, 0, users.count())
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, users := newAuthService()

	_, err := svc.Register(context.Background(), "alice@example.com", "pw123", "/uploads/a.png")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "alice@example.com", "other", "/uploads/b.png")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.Equal(t, 1, users.count(), "failed registration must not alter the stored user count")
}

func TestAuthService_Login(t *testing.T) {
	svc, _ := newAuthService()

	reg, err := svc.Register(context.Background(), "alice@example.com", "pw123", "/uploads/a.png")
	require.NoError(t, err)

	res, err := svc.Login(context.Background(), "alice@example.com", "pw123")
	require.NoError(t, err)

	// Login and register tokens share the same subject.
	c1, err := svc.JWT.Parse(reg.Token)
	require.NoError(t, err)
	c2, err := svc.JWT.Parse(res.Token)
	require.NoError(t, err)
	assert.Equal(t, c1.UserID, c2.UserID)
	assert.Equal(t, reg.User, res.User)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	svc, _ := newAuthService()

	_, err := svc.Register(context.Background(), "alice@example.com", "pw123", "/uploads/a.png")
	require.NoError(t, err)

	// Unknown email and wrong password yield the same error kind.
	_, errUnknown := svc.Login(context.Background(), "nobody@example.com", "pw123")
	_, errWrongPw := svc.Login(context.Background(), "alice@example.com", "wrong")

	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPw, ErrInvalidCredentials)
	assert.Equal(t, errUnknown, errWrongPw)
}
