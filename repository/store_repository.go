package repository

import (
	"campuseats/entity"

	"gorm.io/gorm"
)

type StoreRepository struct {
	DB *gorm.DB
}

func NewStoreRepository(db *gorm.DB) *StoreRepository {
	return &StoreRepository{DB: db}
}

func (r *StoreRepository) Create(s *entity.Store) error {
	return r.DB.Create(s).Error
}

// the one-store-per-account invariant hangs off this lookup
func (r *StoreRepository) FindByUserID(userID uint) (*entity.Store, error) {
	var s entity.Store
	if err := r.DB.Where("user_id = ?", userID).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StoreRepository) FindByID(id uint) (*entity.Store, error) {
	var s entity.Store
	if err := r.DB.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StoreRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Store{}).Where("id = ?", id).Updates(updates).Error
}

func (r *StoreRepository) ListAll() ([]entity.Store, error) {
	var stores []entity.Store
	err := r.DB.Preload("User").Order("id DESC").Find(&stores).Error
	return stores, err
}

func (r *StoreRepository) IsOwnedBy(storeID, userID uint) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.Store{}).
		Where("id = ? AND user_id = ?", storeID, userID).
		Count(&cnt).Error
	return cnt > 0, err
}
