package person

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/haldenworks/contact-manager/internal/audit"
	domain "github.com/haldenworks/contact-manager/internal/domain/person"
	"github.com/haldenworks/contact-manager/internal/httperr"
	"github.com/haldenworks/contact-manager/internal/models"
)

// ======================================================
// INPUT
// ======================================================

// UpdatePersonInput is a partial patch; nil means "leave unchanged".
// A non-nil DynamicFields replaces the full field set.
type UpdatePersonInput struct {
	Name    *string
	Email   *string
	Phone   *string
	Role    *string
	Company *string
	Status  *string
	Notes   *string
	Address *string

	LastInteraction *time.Time

	DynamicFields *[]domain.FieldInput
}

// ======================================================
// USE CASE
// ======================================================

type UpdatePerson struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdatePerson(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdatePerson {
	return &UpdatePerson{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdatePerson) Execute(
	ctx context.Context,
	id uint,
	userID *uint,
	in UpdatePersonInput,
) (*models.Person, error) {

	p, err := uc.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("person_not_found")
		}
		return nil, err
	}

	var violations []string

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			violations = append(violations, "name must not be empty")
		} else {
			p.Name = name
		}
	}
	if in.Email != nil {
		p.Email = strings.ToLower(strings.TrimSpace(*in.Email))
	}
	if in.Phone != nil {
		p.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Role != nil {
		p.Role = *in.Role
	}
	if in.Company != nil {
		p.Company = *in.Company
	}
	if in.Status != nil {
		if !domain.IsValidStatus(*in.Status) {
			violations = append(violations, "status must be one of the known statuses")
		} else {
			p.Status = *in.Status
		}
	}
	if in.Notes != nil {
		p.Notes = *in.Notes
	}
	if in.Address != nil {
		p.Address = *in.Address
	}
	if in.LastInteraction != nil {
		p.LastInteraction = in.LastInteraction
	}

	var fields []models.DynamicField
	replaceFields := false
	if in.DynamicFields != nil {
		replaceFields = true
		fields, err = domain.BuildDynamicFields(*in.DynamicFields)
		if err != nil {
			if ve, ok := httperr.AsValidation(err); ok {
				violations = append(violations, ve.Violations...)
			} else {
				return nil, err
			}
		}
	}

	if len(violations) > 0 {
		return nil, httperr.ErrValidation(violations)
	}

	if err := uc.repo.Update(ctx, p, fields, replaceFields); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "person_updated",
		Entity:   "person",
		EntityID: &p.ID,
	})

	return p, nil
}
