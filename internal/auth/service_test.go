package auth

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/haldenworks/contact-manager/internal/httperr"
	"github.com/haldenworks/contact-manager/internal/models"
	"github.com/haldenworks/contact-manager/internal/testutil"
)

func newTestService(t *testing.T, name string) *Service {
	t.Helper()
	db := testutil.OpenTestDB(t, name)
	return NewService(db, testutil.TestConfig())
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestService(t, "auth_register")
	ctx := context.Background()

	user, err := svc.Register(ctx, "Alice", "alice@example.com", "hunter22")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.ID == 0 || user.Role != "member" {
		t.Fatalf("unexpected user: %+v", user)
	}

	// Duplicate email must surface as a conflict, not a generic failure.
	if _, err := svc.Register(ctx, "Alice 2", "alice@example.com", "hunter23"); !httperr.IsBusiness(err, "email_already_registered") {
		t.Fatalf("expected email_already_registered, got %v", err)
	}

	got, token, err := svc.Login(ctx, "alice@example.com", "hunter22")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if got.ID != user.ID || token == "" {
		t.Fatalf("unexpected login result: %+v %q", got, token)
	}

	claims, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != user.ID || claims.Role != "member" || claims.ID == "" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestLogin_WrongPasswordMutatesNothing(t *testing.T) {
	svc := newTestService(t, "auth_wrongpw")
	ctx := context.Background()

	user, err := svc.Register(ctx, "Bob", "bob@example.com", "correct-horse")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	var before models.User
	if err := svc.db.First(&before, user.ID).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}

	for i := 0; i < 3; i++ {
		_, _, err := svc.Login(ctx, "bob@example.com", "wrong-password")
		if !httperr.IsBusiness(err, "invalid_credentials") {
			t.Fatalf("attempt %d: expected invalid_credentials, got %v", i, err)
		}
	}

	// Unknown email answers identically.
	if _, _, err := svc.Login(ctx, "nobody@example.com", "whatever"); !httperr.IsBusiness(err, "invalid_credentials") {
		t.Fatalf("expected invalid_credentials for unknown email, got %v", err)
	}

	var after models.User
	if err := svc.db.First(&after, user.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if after.PasswordHash != before.PasswordHash || !after.UpdatedAt.Equal(before.UpdatedAt) {
		t.Fatalf("user record changed after failed logins")
	}

	var count int64
	svc.db.Model(&models.User{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 user, got %d", count)
	}
}

func TestVerifyToken_Invalid(t *testing.T) {
	svc := newTestService(t, "auth_verify")
	ctx := context.Background()

	user, err := svc.Register(ctx, "Carol", "carol@example.com", "secret123")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	token, err := svc.IssueToken(user)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := svc.VerifyToken(token + "tampered"); !httperr.IsBusiness(err, "invalid_token") {
		t.Fatalf("expected invalid_token for tampered token, got %v", err)
	}

	other := NewService(svc.db, testutil.TestConfig())
	other.cfg.JWTSecret = "another-secret"
	if _, err := other.VerifyToken(token); !httperr.IsBusiness(err, "invalid_token") {
		t.Fatalf("expected invalid_token across secrets, got %v", err)
	}

	expired := NewService(svc.db, testutil.TestConfig())
	expired.cfg.TokenTTL = -time.Minute
	tok, err := expired.IssueToken(user)
	if err != nil {
		t.Fatalf("issue expired: %v", err)
	}
	if _, err := svc.VerifyToken(tok); !httperr.IsBusiness(err, "invalid_token") {
		t.Fatalf("expected invalid_token for expired token, got %v", err)
	}
}

func TestRequestPasswordReset_AntiEnumeration(t *testing.T) {
	svc := newTestService(t, "auth_reset_enum")
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Dave", "dave@example.com", "secret123"); err != nil {
		t.Fatalf("register: %v", err)
	}

	var delivered []string
	svc.Deliver = func(email, token string) {
		delivered = append(delivered, token)
	}

	if err := svc.RequestPasswordReset(ctx, "dave@example.com"); err != nil {
		t.Fatalf("request for known email: %v", err)
	}
	if err := svc.RequestPasswordReset(ctx, "ghost@example.com"); err != nil {
		t.Fatalf("request for unknown email must also succeed: %v", err)
	}

	if len(delivered) != 1 {
		t.Fatalf("expected exactly one delivered token, got %d", len(delivered))
	}

	var count int64
	svc.db.Model(&models.PasswordResetToken{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 stored token, got %d", count)
	}
}

func TestResetPassword_SingleUse(t *testing.T) {
	svc := newTestService(t, "auth_reset_use")
	ctx := context.Background()

	user, err := svc.Register(ctx, "Erin", "erin@example.com", "oldpassword")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	var token string
	svc.Deliver = func(email, tok string) { token = tok }

	// Two outstanding tokens; redeeming one must invalidate the other.
	if err := svc.RequestPasswordReset(ctx, "erin@example.com"); err != nil {
		t.Fatalf("request: %v", err)
	}
	first := token
	if err := svc.RequestPasswordReset(ctx, "erin@example.com"); err != nil {
		t.Fatalf("request: %v", err)
	}
	second := token

	if err := svc.ResetPassword(ctx, second, "newpassword"); err != nil {
		t.Fatalf("reset: %v", err)
	}

	var updated models.User
	if err := svc.db.First(&updated, user.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("newpassword")); err != nil {
		t.Fatalf("new password not set: %v", err)
	}

	if err := svc.ResetPassword(ctx, second, "again"); !httperr.IsBusiness(err, "invalid_token") {
		t.Fatalf("expected invalid_token on reuse, got %v", err)
	}
	if err := svc.ResetPassword(ctx, first, "replay"); !httperr.IsBusiness(err, "invalid_token") {
		t.Fatalf("expected sibling token invalidated, got %v", err)
	}
}

func TestResetPassword_ExpiredOrUnknown(t *testing.T) {
	svc := newTestService(t, "auth_reset_exp")
	ctx := context.Background()

	user, err := svc.Register(ctx, "Finn", "finn@example.com", "oldpassword")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	expired := models.PasswordResetToken{
		UserID:    user.ID,
		Token:     "expired-token",
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	if err := svc.db.Create(&expired).Error; err != nil {
		t.Fatalf("seed expired token: %v", err)
	}

	if err := svc.ResetPassword(ctx, "expired-token", "newpassword"); !httperr.IsBusiness(err, "invalid_token") {
		t.Fatalf("expected invalid_token for expired token, got %v", err)
	}
	if err := svc.ResetPassword(ctx, "never-issued", "newpassword"); !httperr.IsBusiness(err, "invalid_token") {
		t.Fatalf("expected invalid_token for unknown token, got %v", err)
	}
}
