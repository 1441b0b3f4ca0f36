package repository

import (
	"campuseats/entity"

	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

func (r *ProductRepository) Create(p *entity.Product) error {
	return r.DB.Create(p).Error
}

func (r *ProductRepository) ListForStore(storeID uint) ([]entity.Product, error) {
	var products []entity.Product
	err := r.DB.Where("store_id = ?", storeID).
		Order("category").Order("name").
		Find(&products).Error
	return products, err
}

// FindForStore returns the product only if it belongs to the store.
func (r *ProductRepository) FindForStore(storeID, productID uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.Where("id = ? AND store_id = ?", productID, storeID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) Update(p *entity.Product) error {
	return r.DB.Save(p).Error
}

func (r *ProductRepository) Delete(p *entity.Product) error {
	return r.DB.Delete(p).Error
}
