package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/haldenworks/contact-manager/internal/audit"
	"github.com/haldenworks/contact-manager/internal/auth"
	"github.com/haldenworks/contact-manager/internal/httperr"
	"github.com/haldenworks/contact-manager/internal/middleware"
	"github.com/haldenworks/contact-manager/internal/revocation"
	"github.com/haldenworks/contact-manager/internal/validators"
)

type AuthHandler struct {
	svc      *auth.Service
	denylist *revocation.Denylist
	audit    *audit.Dispatcher
}

func NewAuthHandler(
	svc *auth.Service,
	denylist *revocation.Denylist,
	audit *audit.Dispatcher,
) *AuthHandler {
	return &AuthHandler{
		svc:      svc,
		denylist: denylist,
		audit:    audit,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type PasswordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type PasswordResetConfirm struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailDomainValid(email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_email_domain"})
		return
	}

	user, err := h.svc.Register(c.Request.Context(), req.Name, email, req.Password)
	if err != nil {
		if httperr.IsBusiness(err, "email_already_registered") {
			httperr.Conflict(c, "email_already_registered", "This email is already registered.")
			return
		}
		httperr.Internal(c, "failed_to_register", "Could not create account.")
		return
	}

	token, err := h.svc.IssueToken(user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not issue session token.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID: &user.ID,
		Action: "user_registered",
		Entity: "user",
	})

	c.JSON(http.StatusCreated, gin.H{
		"user":  user,
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	user, token, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_credentials") {
			httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
			return
		}
		httperr.Internal(c, "internal_error", "Could not log in.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID: &user.ID,
		Action: "user_logged_in",
		Entity: "user",
	})

	c.JSON(http.StatusOK, gin.H{
		"user":  user,
		"token": token,
	})
}

// Logout is stateless unless Redis is configured, in which case the token's
// jti is denylisted for its remaining lifetime.
func (h *AuthHandler) Logout(c *gin.Context) {
	claimsVal, exists := c.Get(middleware.ContextClaims)
	if exists && h.denylist.Enabled() {
		if claims, ok := claimsVal.(*auth.Claims); ok && claims.ExpiresAt != nil {
			ttl := time.Until(claims.ExpiresAt.Time)
			if err := h.denylist.Revoke(c.Request.Context(), claims.ID, ttl); err != nil {
				httperr.Internal(c, "failed_to_revoke_token", "Could not revoke session.")
				return
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "logged_out"})
}

// RequestPasswordReset always answers 200 so the endpoint cannot be used
// to probe which emails have accounts.
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req PasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if err := h.svc.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		httperr.Internal(c, "internal_error", "Could not process request.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *AuthHandler) ConfirmPasswordReset(c *gin.Context) {
	var req PasswordResetConfirm
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if err := h.svc.ResetPassword(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		if httperr.IsBusiness(err, "invalid_token") {
			httperr.BadRequest(c, "invalid_token", "Reset token is invalid, expired or already used.")
			return
		}
		httperr.Internal(c, "internal_error", "Could not reset password.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "password_updated"})
}
