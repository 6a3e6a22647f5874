package usecase

import (
	"errors"
	"strings"

	"fanbase/internal/entity"
	"fanbase/internal/repo/persistent"

	"gorm.io/gorm"
)

type CategoryUseCase interface {
	Create(name string) (*entity.Category, error)
	List() ([]*entity.Category, error)
	Update(id, name string) (*entity.Category, error)
	Delete(id string) error
}

type categoryUseCase struct {
	catRepo persistent.CategoryRepository
}

func NewCategoryUseCase(catRepo persistent.CategoryRepository) CategoryUseCase {
	return &categoryUseCase{catRepo: catRepo}
}

func (uc *categoryUseCase) Create(name string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidInput
	}

	category := &entity.Category{Name: name}
	if err := uc.catRepo.Create(category); err != nil {
		if errors.Is(err, persistent.ErrDuplicateCategory) {
			return nil, ErrDuplicateCategory
		}
		return nil, err
	}
	return category, nil
}

func (uc *categoryUseCase) List() ([]*entity.Category, error) {
	return uc.catRepo.List()
}

func (uc *categoryUseCase) Update(id, name string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidInput
	}

	category, err := uc.catRepo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	category.Name = name
	if err := uc.catRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (uc *categoryUseCase) Delete(id string) error {
	if _, err := uc.catRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return uc.catRepo.Delete(id)
}
