package person

import (
	"context"

	"github.com/haldenworks/contact-manager/internal/models"
)

// ListFilter narrows and orders a people listing. An empty Statuses slice
// means no status restriction.
type ListFilter struct {
	Statuses []Status
	Query    string
	Sort     string // "name" or "created_at"
}

type Repository interface {
	Create(
		ctx context.Context,
		p *models.Person,
	) error

	Get(
		ctx context.Context,
		id uint,
	) (*models.Person, error)

	List(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Person, error)

	// Update persists the person and, when replaceFields is set, swaps the
	// full dynamic-field set in the same transaction.
	Update(
		ctx context.Context,
		p *models.Person,
		fields []models.DynamicField,
		replaceFields bool,
	) error

	// Delete removes the person and all owned dynamic fields.
	Delete(
		ctx context.Context,
		id uint,
	) error
}
