package controllers

import (
	"strconv"

	"campuseats/pkg/resp"
	"campuseats/services"
	"campuseats/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Svc *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ValidationFailed(c, bindingErrors(err))
		return
	}

	order, err := oc.Svc.Create(uid, &req)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.Created(c, "Order created successfully", gin.H{"order": order})
}

// GET /orders: orders for the caller's store (vendor view)
func (oc *OrderController) Index(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	orders, err := oc.Svc.ListForVendor(uid)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, "Orders retrieved successfully", gin.H{"orders": orders})
}

// GET /orders/my: orders placed by the caller
func (oc *OrderController) MyOrders(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	orders, err := oc.Svc.ListForUser(uid)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, "Orders retrieved successfully", gin.H{"orders": orders})
}

type UpdateStatusReq struct {
	Status string `json:"status" binding:"required,oneof=preparing ready picked_up cancelled delivered"`
}

// PUT /orders/:id/status
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.NotFound(c, "Order not found")
		return
	}

	var req UpdateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ValidationFailed(c, bindingErrors(err))
		return
	}

	order, svcErr := oc.Svc.UpdateStatus(uid, uint(id), req.Status)
	if svcErr != nil {
		serviceError(c, svcErr)
		return
	}
	resp.OK(c, "Order status updated successfully", gin.H{"order": order})
}

// GET /orders/statistics
func (oc *OrderController) Statistics(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	stats, err := oc.Svc.StatisticsForVendor(uid)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, "Statistics retrieved successfully", gin.H{"statistics": stats})
}
