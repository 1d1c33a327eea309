package person

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/haldenworks/contact-manager/internal/audit"
	domain "github.com/haldenworks/contact-manager/internal/domain/person"
	"github.com/haldenworks/contact-manager/internal/httperr"
)

type DeletePerson struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeletePerson(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeletePerson {
	return &DeletePerson{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeletePerson) Execute(
	ctx context.Context,
	id uint,
	userID *uint,
) error {

	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.ErrBusiness("person_not_found")
		}
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "person_deleted",
		Entity:   "person",
		EntityID: &id,
	})

	return nil
}
