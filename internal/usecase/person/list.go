package person

import (
	"context"

	domain "github.com/haldenworks/contact-manager/internal/domain/person"
	"github.com/haldenworks/contact-manager/internal/models"
)

type ListPeople struct {
	repo domain.Repository
}

func NewListPeople(repo domain.Repository) *ListPeople {
	return &ListPeople{repo: repo}
}

func (uc *ListPeople) Execute(
	ctx context.Context,
	statusFilter string,
	query string,
	sort string,
) ([]models.Person, error) {

	statuses, err := domain.FilterStatuses(statusFilter)
	if err != nil {
		return nil, err
	}

	return uc.repo.List(ctx, domain.ListFilter{
		Statuses: statuses,
		Query:    query,
		Sort:     sort,
	})
}
