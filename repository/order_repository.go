package repository

import (
	"campuseats/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- writes (all take the caller's tx) ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

// guarded transition: only fires when the row is still in `from`
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to string) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// ---------------- reads ----------------

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GetOrderGraph loads an order with everything the response shaping needs.
func (r *OrderRepository) GetOrderGraph(orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.
		Preload("User").
		Preload("Store").
		Preload("Items.Product").
		First(&o, orderID).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) FindForStore(storeID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND store_id = ?", orderID, storeID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListForStore(storeID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("store_id = ?", storeID).
		Preload("User").
		Preload("Items.Product").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListForUser(userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("user_id = ?", userID).
		Preload("Store").
		Preload("Items.Product").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// ---------------- statistics ----------------

func (r *OrderRepository) CountForStore(storeID uint) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Order{}).Where("store_id = ?", storeID).Count(&cnt).Error
	return cnt, err
}

func (r *OrderRepository) CountPendingForStore(storeID uint) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Order{}).
		Where("store_id = ? AND status IN ?", storeID, []string{entity.StatusPreparing, entity.StatusReady}).
		Count(&cnt).Error
	return cnt, err
}

// revenue excludes cancelled orders
func (r *OrderRepository) RevenueForStore(storeID uint) (decimal.Decimal, error) {
	var row struct{ Revenue decimal.Decimal }
	err := r.DB.Model(&entity.Order{}).
		Select("COALESCE(SUM(total), 0) AS revenue").
		Where("store_id = ? AND status <> ?", storeID, entity.StatusCancelled).
		Scan(&row).Error
	return row.Revenue, err
}
