package persistent

import (
	"errors"

	"fanbase/internal/entity"
	"fanbase/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrDuplicateCategory = errors.New("category already exists")

type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	List() ([]*entity.Category, error)
	Update(category *entity.Category) error
	Delete(id string) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *entity.Category) error {
	m := &model.CategoryModel{Name: category.Name}
	res := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(m)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrDuplicateCategory
	}
	category.ID = m.ID
	category.CreatedAt = m.CreatedAt
	return nil
}

func (r *categoryRepository) GetByID(id string) (*entity.Category, error) {
	var m model.CategoryModel
	if err := r.db.Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return ToCategoryEntity(&m), nil
}

func (r *categoryRepository) List() ([]*entity.Category, error) {
	var ms []model.CategoryModel
	if err := r.db.Order("name ASC").Find(&ms).Error; err != nil {
		return nil, err
	}

	categories := make([]*entity.Category, len(ms))
	for i := range ms {
		categories[i] = ToCategoryEntity(&ms[i])
	}
	return categories, nil
}

func (r *categoryRepository) Update(category *entity.Category) error {
	return r.db.Model(&model.CategoryModel{}).Where("id = ?", category.ID).
		UpdateColumn("name", category.Name).Error
}

func (r *categoryRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.CategoryModel{}).Error
}
