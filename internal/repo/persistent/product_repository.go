package persistent

import (
	"fanbase/internal/entity"
	"fanbase/internal/model"

	"gorm.io/gorm"
)

type ProductListFilter struct {
	UserID     string
	CategoryID string
	Kind       string
	Search     string
}

type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByIDs(ids []string) ([]*entity.Product, error)
	List(filter ProductListFilter, limit, offset int) ([]*entity.Product, int64, error)
	Update(product *entity.Product) error
	Delete(id string) error
	DecrementStock(id string, quantity int) (bool, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(product *entity.Product) error {
	m := ToProductModel(product)
	if err := r.db.Create(m).Error; err != nil {
		return err
	}
	product.ID = m.ID
	product.CreatedAt = m.CreatedAt
	return nil
}

func (r *productRepository) GetByID(id string) (*entity.Product, error) {
	var m model.ProductModel
	if err := r.db.Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return ToProductEntity(&m), nil
}

func (r *productRepository) GetByIDs(ids []string) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var ms []model.ProductModel
	if err := r.db.Where("id IN ?", ids).Find(&ms).Error; err != nil {
		return nil, err
	}

	products := make([]*entity.Product, len(ms))
	for i := range ms {
		products[i] = ToProductEntity(&ms[i])
	}
	return products, nil
}

func (r *productRepository) List(filter ProductListFilter, limit, offset int) ([]*entity.Product, int64, error) {
	q := r.db.Model(&model.ProductModel{})
	if filter.UserID != "" {
		q = q.Where("user_id = ?", filter.UserID)
	}
	if filter.CategoryID != "" {
		q = q.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Kind != "" {
		q = q.Where("kind = ?", filter.Kind)
	}
	if filter.Search != "" {
		q = q.Where("(name ILIKE ? OR description ILIKE ?)", "%"+filter.Search+"%", "%"+filter.Search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []model.ProductModel
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	products := make([]*entity.Product, len(ms))
	for i := range ms {
		products[i] = ToProductEntity(&ms[i])
	}
	return products, total, nil
}

func (r *productRepository) Update(product *entity.Product) error {
	return r.db.Save(ToProductModel(product)).Error
}

func (r *productRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.ProductModel{}).Error
}

// DecrementStock succeeds only when enough stock remains.
func (r *productRepository) DecrementStock(id string, quantity int) (bool, error) {
	res := r.db.Model(&model.ProductModel{}).
		Where("id = ? AND stock >= ?", id, quantity).
		UpdateColumn("stock", gorm.Expr("stock - ?", quantity))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
