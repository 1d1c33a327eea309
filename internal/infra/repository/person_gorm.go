package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	domain "github.com/haldenworks/contact-manager/internal/domain/person"
	"github.com/haldenworks/contact-manager/internal/models"
)

type PersonGormRepository struct {
	db *gorm.DB
}

func NewPersonGormRepository(db *gorm.DB) *PersonGormRepository {
	return &PersonGormRepository{db: db}
}

// --------------------------------------------------
// Create
// --------------------------------------------------

func (r *PersonGormRepository) Create(
	ctx context.Context,
	p *models.Person,
) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// --------------------------------------------------
// Get
// --------------------------------------------------

func (r *PersonGormRepository) Get(
	ctx context.Context,
	id uint,
) (*models.Person, error) {

	var p models.Person
	if err := r.db.WithContext(ctx).
		Preload("DynamicFields").
		First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// --------------------------------------------------
// List
// --------------------------------------------------

func (r *PersonGormRepository) List(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Person, error) {

	q := r.db.WithContext(ctx).Model(&models.Person{})

	if len(filter.Statuses) > 0 {
		q = q.Where("status IN ?", filter.Statuses)
	}

	if query := strings.ToLower(strings.TrimSpace(filter.Query)); query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(company) LIKE ?",
			like, like, like,
		)
	}

	switch filter.Sort {
	case "name":
		q = q.Order("name ASC")
	default:
		q = q.Order("created_at DESC")
	}

	var people []models.Person
	if err := q.
		Preload("DynamicFields").
		Find(&people).Error; err != nil {
		return nil, err
	}
	return people, nil
}

// --------------------------------------------------
// Update
// --------------------------------------------------

func (r *PersonGormRepository) Update(
	ctx context.Context,
	p *models.Person,
	fields []models.DynamicField,
	replaceFields bool,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("DynamicFields").Save(p).Error; err != nil {
			return err
		}

		if !replaceFields {
			return nil
		}

		if err := tx.
			Where("person_id = ?", p.ID).
			Delete(&models.DynamicField{}).Error; err != nil {
			return err
		}

		for i := range fields {
			fields[i].ID = 0
			fields[i].PersonID = p.ID
		}

		if len(fields) > 0 {
			if err := tx.Create(&fields).Error; err != nil {
				return err
			}
		}

		p.DynamicFields = fields
		return nil
	})
}

// --------------------------------------------------
// Delete
// --------------------------------------------------

func (r *PersonGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p models.Person
		if err := tx.First(&p, id).Error; err != nil {
			return err
		}

		if err := tx.
			Where("person_id = ?", id).
			Delete(&models.DynamicField{}).Error; err != nil {
			return err
		}

		return tx.Delete(&p).Error
	})
}
