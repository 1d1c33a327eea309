package person

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/haldenworks/contact-manager/internal/domain/person"
	"github.com/haldenworks/contact-manager/internal/httperr"
	"github.com/haldenworks/contact-manager/internal/models"
)

type GetPerson struct {
	repo domain.Repository
}

func NewGetPerson(repo domain.Repository) *GetPerson {
	return &GetPerson{repo: repo}
}

func (uc *GetPerson) Execute(
	ctx context.Context,
	id uint,
) (*models.Person, error) {

	p, err := uc.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("person_not_found")
		}
		return nil, err
	}
	return p, nil
}
