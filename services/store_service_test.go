package services

import (
	"testing"

	"campuseats/entity"
	"campuseats/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateStoreOncePerAccount(t *testing.T) {
	db := setupDB(t)
	svc := NewStoreService(repository.NewStoreRepository(db), nil)
	vendor := seedUser(t, db, entity.RoleVendor)

	in := &StoreIn{BusinessName: "Tapsihan", BusinessType: "food_stall"}
	store, err := svc.CreateStore(vendor.ID, in)
	require.NoError(t, err)
	assert.Equal(t, vendor.ID, store.UserID)

	_, err = svc.CreateStore(vendor.ID, &StoreIn{BusinessName: "Second", BusinessType: "cafe"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)

	assert.EqualValues(t, 1, countRows(t, db, &entity.Store{}))
}

func TestVendorStoreNotFound(t *testing.T) {
	db := setupDB(t)
	svc := NewStoreService(repository.NewStoreRepository(db), nil)
	vendor := seedUser(t, db, entity.RoleVendor)

	_, err := svc.VendorStore(vendor.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
