package services

import (
	"testing"

	"campuseats/entity"
	"campuseats/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApproveVendor(t *testing.T) {
	db := setupDB(t)
	svc := NewAdminService(repository.NewUserRepository(db))

	vendor := seedUser(t, db, entity.RoleVendor)
	require.False(t, vendor.IsApproved)

	pending, err := svc.PendingVendors()
	require.NoError(t, err)
	require.Len(t, pending, 1)

	require.NoError(t, svc.ApproveVendor(vendor.ID))

	var u entity.User
	require.NoError(t, db.First(&u, vendor.ID).Error)
	assert.True(t, u.IsApproved)

	pending, err = svc.PendingVendors()
	require.NoError(t, err)
	assert.Empty(t, pending)

	require.NoError(t, svc.RejectVendor(vendor.ID))
	require.NoError(t, db.First(&u, vendor.ID).Error)
	assert.False(t, u.IsApproved)
}

func TestApproveVendorOnlyTouchesVendors(t *testing.T) {
	db := setupDB(t)
	svc := NewAdminService(repository.NewUserRepository(db))

	customer := seedUser(t, db, entity.RoleCustomer)

	err := svc.ApproveVendor(customer.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.ApproveVendor(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}
