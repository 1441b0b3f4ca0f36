package controllers

import (
	"strconv"

	"campuseats/entity"
	"campuseats/pkg/resp"
	"campuseats/pkg/storage"
	"campuseats/services"
	"campuseats/utils"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	Svc     *services.ProductService
	Storage *storage.Storage
}

func NewProductController(svc *services.ProductService, st *storage.Storage) *ProductController {
	return &ProductController{Svc: svc, Storage: st}
}

type productView struct {
	entity.Product
	ImageURL string `json:"image_url"`
}

func (pc *ProductController) view(p entity.Product) productView {
	return productView{Product: p, ImageURL: pc.Storage.URL(p.ImagePath)}
}

// GET /products
func (pc *ProductController) Index(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	products, err := pc.Svc.List(uid)
	if err != nil {
		serviceError(c, err)
		return
	}

	out := make([]productView, 0, len(products))
	for _, p := range products {
		out = append(out, pc.view(p))
	}
	resp.OK(c, "Products retrieved successfully", gin.H{"products": out})
}

// POST /products: multipart form with optional image
func (pc *ProductController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var in services.ProductIn
	if err := c.ShouldBind(&in); err != nil {
		resp.ValidationFailed(c, bindingErrors(err))
		return
	}
	image, _ := c.FormFile("image")

	product, err := pc.Svc.Create(uid, &in, image)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.Created(c, "Product created successfully", gin.H{"product": pc.view(*product)})
}

// PUT /products/:id
func (pc *ProductController) Update(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.NotFound(c, "Product not found")
		return
	}

	var in services.ProductIn
	if err := c.ShouldBind(&in); err != nil {
		resp.ValidationFailed(c, bindingErrors(err))
		return
	}
	image, _ := c.FormFile("image")

	product, svcErr := pc.Svc.Update(uid, uint(id), &in, image)
	if svcErr != nil {
		serviceError(c, svcErr)
		return
	}
	resp.OK(c, "Product updated successfully", gin.H{"product": pc.view(*product)})
}

// DELETE /products/:id
func (pc *ProductController) Destroy(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.NotFound(c, "Product not found")
		return
	}

	if err := pc.Svc.Delete(uid, uint(id)); err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, "Product deleted successfully", nil)
}
