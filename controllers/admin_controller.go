package controllers

import (
	"strconv"

	"campuseats/entity"
	"campuseats/pkg/resp"
	"campuseats/services"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	Svc *services.AdminService
}

func NewAdminController(svc *services.AdminService) *AdminController {
	return &AdminController{Svc: svc}
}

// GET /admin/pending-vendors
func (ac *AdminController) PendingVendors(c *gin.Context) {
	users, err := ac.Svc.PendingVendors()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, "Pending vendors retrieved successfully", gin.H{"vendors": users})
}

// POST /admin/vendors/:id/approve
func (ac *AdminController) ApproveVendor(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.NotFound(c, "Vendor not found")
		return
	}
	if err := ac.Svc.ApproveVendor(uint(id)); err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, "Vendor approved successfully", nil)
}

// POST /admin/vendors/:id/reject
func (ac *AdminController) RejectVendor(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.NotFound(c, "Vendor not found")
		return
	}
	if err := ac.Svc.RejectVendor(uint(id)); err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, "Vendor rejected successfully", nil)
}

// GET /admin/users
func (ac *AdminController) AllUsers(c *gin.Context) {
	users, err := ac.Svc.AllUsers()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, "Users retrieved successfully", gin.H{"users": users})
}

// GET /admin/users/vendors
func (ac *AdminController) AllVendors(c *gin.Context) {
	users, err := ac.Svc.UsersByRole(entity.RoleVendor)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, "Vendors retrieved successfully", gin.H{"users": users})
}

// GET /admin/users/customers
func (ac *AdminController) AllCustomers(c *gin.Context) {
	users, err := ac.Svc.UsersByRole(entity.RoleCustomer)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, "Customers retrieved successfully", gin.H{"users": users})
}

// GET /admin/users/:id
func (ac *AdminController) GetUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.NotFound(c, "User not found")
		return
	}
	user, svcErr := ac.Svc.GetUser(uint(id))
	if svcErr != nil {
		serviceError(c, svcErr)
		return
	}
	resp.OK(c, "User retrieved successfully", gin.H{"user": user})
}
