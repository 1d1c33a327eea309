package person

import (
	"context"
	"strings"

	"github.com/haldenworks/contact-manager/internal/audit"
	domain "github.com/haldenworks/contact-manager/internal/domain/person"
	"github.com/haldenworks/contact-manager/internal/httperr"
	"github.com/haldenworks/contact-manager/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreatePersonInput struct {
	Name    string
	Email   string
	Phone   string
	Role    string
	Company string
	Status  string
	Notes   string
	Address string

	CreatedByID *uint

	DynamicFields []domain.FieldInput
}

// ======================================================
// USE CASE
// ======================================================

type CreatePerson struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreatePerson(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreatePerson {
	return &CreatePerson{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreatePerson) Execute(
	ctx context.Context,
	in CreatePersonInput,
) (*models.Person, error) {

	var violations []string

	name := strings.TrimSpace(in.Name)
	if name == "" {
		violations = append(violations, "name is required")
	}

	status := domain.InitialStatus()
	if in.Status != "" {
		if !domain.IsValidStatus(in.Status) {
			violations = append(violations, "status must be one of the known statuses")
		} else {
			status = domain.Status(in.Status)
		}
	}

	fields, err := domain.BuildDynamicFields(in.DynamicFields)
	if err != nil {
		if ve, ok := httperr.AsValidation(err); ok {
			violations = append(violations, ve.Violations...)
		} else {
			return nil, err
		}
	}

	if len(violations) > 0 {
		return nil, httperr.ErrValidation(violations)
	}

	p := &models.Person{
		Name:          name,
		Email:         strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:         strings.TrimSpace(in.Phone),
		Role:          in.Role,
		Company:       in.Company,
		Status:        string(status),
		Notes:         in.Notes,
		Address:       in.Address,
		CreatedByID:   in.CreatedByID,
		DynamicFields: fields,
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.CreatedByID,
		Action:   "person_created",
		Entity:   "person",
		EntityID: &p.ID,
	})

	return p, nil
}
