package usecase

import (
	"errors"
	"fmt"
	"io"

	"fanbase/internal/entity"
	"fanbase/internal/repo/persistent"
	"fanbase/pkg/logger"
	"fanbase/pkg/s3"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductUseCase interface {
	Create(product *entity.Product) (*entity.Product, error)
	GetByID(id string) (*entity.Product, error)
	List(filter persistent.ProductListFilter, page, limit int) ([]*entity.Product, int64, error)
	Update(userID string, product *entity.Product) (*entity.Product, error)
	Delete(userID, productID string) error
	UploadImage(userID, filename string, file io.Reader, contentType string) (string, error)
}

type productUseCase struct {
	prodRepo persistent.ProductRepository
	catRepo  persistent.CategoryRepository
	s3Client *s3.Client
	log      *logger.Logger
}

func NewProductUseCase(
	prodRepo persistent.ProductRepository,
	catRepo persistent.CategoryRepository,
	s3Client *s3.Client,
	log *logger.Logger,
) ProductUseCase {
	return &productUseCase{prodRepo: prodRepo, catRepo: catRepo, s3Client: s3Client, log: log}
}

func (uc *productUseCase) Create(product *entity.Product) (*entity.Product, error) {
	if product.UserID == "" || product.Name == "" || product.Price <= 0 {
		return nil, ErrInvalidInput
	}
	if product.Kind != entity.ProductDigital && product.Kind != entity.ProductPhysical {
		return nil, ErrInvalidInput
	}
	if product.Kind == entity.ProductPhysical && product.Stock < 0 {
		return nil, ErrInvalidInput
	}

	if product.CategoryID != "" {
		if _, err := uc.catRepo.GetByID(product.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrInvalidInput
			}
			return nil, err
		}
	}

	if err := uc.prodRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (uc *productUseCase) GetByID(id string) (*entity.Product, error) {
	product, err := uc.prodRepo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (uc *productUseCase) List(filter persistent.ProductListFilter, page, limit int) ([]*entity.Product, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return uc.prodRepo.List(filter, limit, (page-1)*limit)
}

func (uc *productUseCase) Update(userID string, product *entity.Product) (*entity.Product, error) {
	existing, err := uc.prodRepo.GetByID(product.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if existing.UserID != userID {
		return nil, ErrForbidden
	}

	existing.Name = product.Name
	existing.Description = product.Description
	existing.Price = product.Price
	existing.Stock = product.Stock
	if product.CategoryID != "" {
		existing.CategoryID = product.CategoryID
	}
	if len(product.Images) > 0 {
		existing.Images = product.Images
	}
	if err := uc.prodRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (uc *productUseCase) Delete(userID, productID string) error {
	product, err := uc.prodRepo.GetByID(productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if product.UserID != userID {
		return ErrForbidden
	}
	return uc.prodRepo.Delete(productID)
}

func (uc *productUseCase) UploadImage(userID, filename string, file io.Reader, contentType string) (string, error) {
	key := fmt.Sprintf("products/%s/%s_%s", userID, uuid.New().String(), filename)
	url, err := uc.s3Client.UploadFile(key, file, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	return url, nil
}
