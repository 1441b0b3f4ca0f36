package services

import (
	"path/filepath"
	"testing"

	"campuseats/entity"
	"campuseats/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.Store{}, &entity.Product{},
		&entity.Order{}, &entity.OrderItem{}, &entity.Feedback{},
	))
	return db
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewStoreRepository(db),
		repository.NewProductRepository(db),
	)
}

func seedUser(t *testing.T, db *gorm.DB, role string) *entity.User {
	t.Helper()
	u := &entity.User{
		Firstname: "Test",
		Lastname:  role,
		Email:     role + "-" + t.Name() + "@example.com",
		Password:  "x",
		Role:      role,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedStore(t *testing.T, db *gorm.DB, owner *entity.User) *entity.Store {
	t.Helper()
	s := &entity.Store{
		BusinessName: "Canteen " + t.Name(),
		BusinessType: "food_stall",
		UserID:       owner.ID,
	}
	require.NoError(t, db.Create(s).Error)
	return s
}

func seedProduct(t *testing.T, db *gorm.DB, store *entity.Store, name string, price string, available bool) *entity.Product {
	t.Helper()
	p := &entity.Product{
		Name:        name,
		Category:    entity.CategorySnacks,
		Price:       decimal.RequireFromString(price),
		IsAvailable: available,
		StoreID:     store.ID,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var cnt int64
	require.NoError(t, db.Model(model).Count(&cnt).Error)
	return cnt
}
