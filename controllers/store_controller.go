package controllers

import (
	"campuseats/entity"
	"campuseats/pkg/resp"
	"campuseats/pkg/storage"
	"campuseats/services"
	"campuseats/utils"

	"github.com/gin-gonic/gin"
)

type StoreController struct {
	Svc     *services.StoreService
	Storage *storage.Storage
}

func NewStoreController(svc *services.StoreService, st *storage.Storage) *StoreController {
	return &StoreController{Svc: svc, Storage: st}
}

func (sc *StoreController) withImageURL(s *entity.Store) gin.H {
	return gin.H{"store": s, "store_image_url": sc.Storage.URL(s.StoreImage)}
}

// GET /store: all stores
func (sc *StoreController) Index(c *gin.Context) {
	stores, err := sc.Svc.ListStores()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, "Stores retrieved successfully", gin.H{"stores": stores})
}

// GET /store/vendor: the caller's own store
func (sc *StoreController) VendorStore(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	store, err := sc.Svc.VendorStore(uid)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, "Store retrieved successfully", sc.withImageURL(store))
}

// POST /store
func (sc *StoreController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var in services.StoreIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.ValidationFailed(c, bindingErrors(err))
		return
	}

	store, err := sc.Svc.CreateStore(uid, &in)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.Created(c, "Store created successfully", gin.H{"store": store})
}

// PUT /store: multipart so the store image can ride along
func (sc *StoreController) Update(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var in services.StoreIn
	if err := c.ShouldBind(&in); err != nil {
		resp.ValidationFailed(c, bindingErrors(err))
		return
	}

	image, _ := c.FormFile("image")

	store, err := sc.Svc.UpdateStore(uid, &in, image)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, "Store updated successfully", sc.withImageURL(store))
}
