package services

import (
	"encoding/json"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"monipee-hotel/models"
)

func TestRegisterThenLogin(t *testing.T) {
	f := newFixture(t)

	reg := f.register(t, "ama@example.com")
	assert.Equal(t, models.RoleCustomer, reg.User.Role)
	assert.NotEmpty(t, reg.Token)
	assert.Equal(t, testNow.Add(24*time.Hour), reg.ExpiresAt)

	login, err := f.auth.Login(f.ctx, "ama@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, login.User.ID)
	assert.NotEqual(t, reg.Token, login.Token)

	raw, err := json.Marshal(login.User)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	f := newFixture(t)
	f.register(t, "ama@example.com")

	_, err := f.auth.Register(f.ctx, RegisterInput{Email: "ama@example.com", Password: "another1", Name: "Other"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	// Matching is case-sensitive.
	_, err = f.auth.Register(f.ctx, RegisterInput{Email: "Ama@example.com", Password: "another1", Name: "Other"})
	assert.NoError(t, err)
}

func TestPasswordTooLong(t *testing.T) {
	f := newFixture(t)
	long := strings.Repeat("p", 80)

	_, err := f.auth.Register(f.ctx, RegisterInput{Email: "ama@example.com", Password: long, Name: "Ama"})
	assert.ErrorIs(t, err, ErrPasswordTooLong)

	f.register(t, "ama@example.com")
	_, err = f.auth.ForgotPassword(f.ctx, "ama@example.com")
	require.NoError(t, err)
	token := resetTokenFromLink(t, f.mailer.resets[0])

	err = f.auth.ResetPassword(f.ctx, long, token, "ama@example.com")
	assert.ErrorIs(t, err, ErrPasswordTooLong)

	// the token survives a rejected password
	require.NoError(t, f.auth.ResetPassword(f.ctx, strings.Repeat("p", 72), token, "ama@example.com"))
}

func TestLogin_Failures(t *testing.T) {
	f := newFixture(t)
	f.register(t, "ama@example.com")

	_, err := f.auth.Login(f.ctx, "ama@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = f.auth.Login(f.ctx, "nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCurrentUser_LogoutAndExpiry(t *testing.T) {
	f := newFixture(t)
	a := f.register(t, "ama@example.com")
	b, err := f.auth.Login(f.ctx, "ama@example.com", "secret123")
	require.NoError(t, err)

	u, err := f.auth.CurrentUser(f.ctx, a.Token)
	require.NoError(t, err)
	assert.Equal(t, a.User.ID, u.ID)

	require.NoError(t, f.auth.Logout(f.ctx, a.Token))
	_, err = f.auth.CurrentUser(f.ctx, a.Token)
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.True(t, IsAuthError(err))

	// Other sessions of the same account survive a logout.
	_, err = f.auth.CurrentUser(f.ctx, b.Token)
	require.NoError(t, err)

	f.clock.Advance(25 * time.Hour)
	_, err = f.auth.CurrentUser(f.ctx, b.Token)
	assert.ErrorIs(t, err, ErrSessionExpired)

	_, err = f.auth.CurrentUser(f.ctx, b.Token)
	assert.ErrorIs(t, err, ErrUnauthenticated, "expired session is removed")

	_, err = f.auth.CurrentUser(f.ctx, "")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestUpdateProfile_RefreshesSessions(t *testing.T) {
	f := newFixture(t)
	sess := f.register(t, "ama@example.com")

	name, phone := "Ama K. Mensah", "020 111 2222"
	u, err := f.auth.UpdateProfile(f.ctx, sess.User.ID, ProfileInput{Name: &name, Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, name, u.Name)
	assert.Equal(t, "ama@example.com", u.Email)

	cur, err := f.auth.CurrentUser(f.ctx, sess.Token)
	require.NoError(t, err)
	assert.Equal(t, name, cur.Name)
	assert.Equal(t, phone, cur.Phone)

	_, err = f.auth.UpdateProfile(f.ctx, "user-missing", ProfileInput{Name: &name})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestForgotPassword_UnknownEmail(t *testing.T) {
	f := newFixture(t)

	msg, err := f.auth.ForgotPassword(f.ctx, "ghost@example.com")
	require.NoError(t, err)
	assert.Equal(t, ForgotPasswordMessage, msg)
	assert.Empty(t, f.mailer.resets)

	resets, err := readBucket[map[string]models.ResetToken](f.ctx, f.store, keyResets)
	require.NoError(t, err)
	assert.Empty(t, resets)
}

func resetTokenFromLink(t *testing.T, link string) string {
	t.Helper()
	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "/reset-password", u.Path)
	return u.Query().Get("token")
}

func TestForgotAndResetPassword(t *testing.T) {
	f := newFixture(t)
	f.register(t, "ama@example.com")

	msg, err := f.auth.ForgotPassword(f.ctx, "ama@example.com")
	require.NoError(t, err)
	assert.Equal(t, ForgotPasswordMessage, msg)
	require.Len(t, f.mailer.resets, 1)
	token := resetTokenFromLink(t, f.mailer.resets[0])
	require.NotEmpty(t, token)

	err = f.auth.ResetPassword(f.ctx, "newpass1", "not-the-token", "ama@example.com")
	assert.ErrorIs(t, err, ErrInvalidResetToken)

	require.NoError(t, f.auth.ResetPassword(f.ctx, "newpass1", token, "ama@example.com"))

	_, err = f.auth.Login(f.ctx, "ama@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = f.auth.Login(f.ctx, "ama@example.com", "newpass1")
	assert.NoError(t, err)

	err = f.auth.ResetPassword(f.ctx, "again12", token, "ama@example.com")
	assert.ErrorIs(t, err, ErrInvalidResetToken, "token is single use")
}

func TestResetPassword_Expired(t *testing.T) {
	f := newFixture(t)
	f.register(t, "ama@example.com")

	_, err := f.auth.ForgotPassword(f.ctx, "ama@example.com")
	require.NoError(t, err)
	token := resetTokenFromLink(t, f.mailer.resets[0])

	f.clock.Advance(61 * time.Minute)
	err = f.auth.ResetPassword(f.ctx, "newpass1", token, "ama@example.com")
	assert.ErrorIs(t, err, ErrResetTokenExpired)
}

func TestPurgeExpired(t *testing.T) {
	f := newFixture(t)
	f.register(t, "ama@example.com")
	_, err := f.auth.ForgotPassword(f.ctx, "ama@example.com")
	require.NoError(t, err)

	sessions, resets, err := f.auth.PurgeExpired(f.ctx, f.clock.Now())
	require.NoError(t, err)
	assert.Zero(t, sessions)
	assert.Zero(t, resets)

	sessions, resets, err = f.auth.PurgeExpired(f.ctx, f.clock.Now().Add(48*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, sessions)
	assert.Equal(t, 1, resets)
}
