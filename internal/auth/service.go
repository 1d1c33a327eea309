package auth

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/haldenworks/contact-manager/internal/config"
	"github.com/haldenworks/contact-manager/internal/httperr"
	"github.com/haldenworks/contact-manager/internal/models"
)

// Service owns credential verification, token issuance and the password
// reset flow. Reset token delivery is out-of-band; Deliver is the seam for
// plugging a mailer in.
type Service struct {
	db  *gorm.DB
	cfg *config.Config

	Deliver func(email, token string)
}

func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:  db,
		cfg: cfg,
		Deliver: func(email, token string) {
			log.Printf("password reset token issued for %s (delivery not configured)", email)
		},
	}
}

// --------------------------------------------------
// Register / Login
// --------------------------------------------------

func (s *Service) Register(
	ctx context.Context,
	name, email, password string,
) (*models.User, error) {

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:         strings.TrimSpace(name),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: string(hashed),
		Role:         "member",
	}

	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, httperr.ErrBusiness("email_already_registered")
		}
		return nil, err
	}

	return &user, nil
}

func (s *Service) Login(
	ctx context.Context,
	email, password string,
) (*models.User, string, error) {

	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := s.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", httperr.ErrBusiness("invalid_credentials")
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", httperr.ErrBusiness("invalid_credentials")
	}

	token, err := s.IssueToken(&user)
	if err != nil {
		return nil, "", err
	}

	return &user, token, nil
}

// --------------------------------------------------
// Password reset
// --------------------------------------------------

// RequestPasswordReset never reports whether the email exists, so the
// endpoint cannot be used to enumerate accounts.
func (s *Service) RequestPasswordReset(
	ctx context.Context,
	email string,
) error {

	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := s.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	reset := models.PasswordResetToken{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(s.cfg.ResetTokenTTL),
	}

	if err := s.db.WithContext(ctx).Create(&reset).Error; err != nil {
		return err
	}

	s.Deliver(user.Email, reset.Token)
	return nil
}

// ResetPassword redeems a token exactly once: the user's hash is replaced,
// the token is marked used, and every other outstanding token for the same
// user is invalidated, all in one transaction.
func (s *Service) ResetPassword(
	ctx context.Context,
	token, newPassword string,
) error {

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var reset models.PasswordResetToken
		if err := tx.
			Where("token = ?", token).
			First(&reset).Error; err != nil {

			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrBusiness("invalid_token")
			}
			return err
		}

		if reset.Used || time.Now().After(reset.ExpiresAt) {
			return httperr.ErrBusiness("invalid_token")
		}

		if err := tx.Model(&models.User{}).
			Where("id = ?", reset.UserID).
			Update("password_hash", string(hashed)).Error; err != nil {
			return err
		}

		// Invalidates the redeemed token and any sibling still outstanding.
		return tx.Model(&models.PasswordResetToken{}).
			Where("user_id = ? AND used = ?", reset.UserID, false).
			Update("used", true).Error
	})
}
