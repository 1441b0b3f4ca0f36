package services

import (
	"errors"
	"mime/multipart"

	"campuseats/entity"
	"campuseats/pkg/storage"
	"campuseats/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductService struct {
	Repo      *repository.ProductRepository
	StoreRepo *repository.StoreRepository
	Storage   *storage.Storage
}

func NewProductService(repo *repository.ProductRepository, storeRepo *repository.StoreRepository, st *storage.Storage) *ProductService {
	return &ProductService{Repo: repo, StoreRepo: storeRepo, Storage: st}
}

type ProductIn struct {
	Name        string          `form:"name" binding:"required,max=255"`
	Description string          `form:"description"`
	Category    string          `form:"category" binding:"required,oneof=buffet budget_meals budget_snacks snacks drinks"`
	Price       float64         `form:"price" binding:"min=0"`
	IsAvailable *bool           `form:"is_available"`
}

func (s *ProductService) storeFor(userID uint) (*entity.Store, error) {
	store, err := s.StoreRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Store not found")
		}
		return nil, err
	}
	return store, nil
}

func (s *ProductService) Create(userID uint, in *ProductIn, image *multipart.FileHeader) (*entity.Product, error) {
	store, err := s.storeFor(userID)
	if err != nil {
		return nil, err
	}
	p := &entity.Product{
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Price:       decimal.NewFromFloat(in.Price),
		IsAvailable: true,
		StoreID:     store.ID,
	}
	if image != nil {
		path, err := s.Storage.SaveImage(image, "products")
		if err != nil {
			return nil, err
		}
		p.ImagePath = path
	}

	if err := s.Repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProductService) List(userID uint) ([]entity.Product, error) {
	store, err := s.storeFor(userID)
	if err != nil {
		return nil, err
	}
	return s.Repo.ListForStore(store.ID)
}

func (s *ProductService) Update(userID, productID uint, in *ProductIn, image *multipart.FileHeader) (*entity.Product, error) {
	store, err := s.storeFor(userID)
	if err != nil {
		return nil, err
	}
	p, err := s.Repo.FindForStore(store.ID, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Product not found")
		}
		return nil, err
	}

	p.Name = in.Name
	p.Description = in.Description
	p.Category = in.Category
	p.Price = decimal.NewFromFloat(in.Price)
	if in.IsAvailable != nil {
		p.IsAvailable = *in.IsAvailable
	}

	if image != nil {
		if p.ImagePath != "" {
			if err := s.Storage.Delete(p.ImagePath); err != nil {
				return nil, err
			}
		}
		path, err := s.Storage.SaveImage(image, "products")
		if err != nil {
			return nil, err
		}
		p.ImagePath = path
	}

	if err := s.Repo.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProductService) Delete(userID, productID uint) error {
	store, err := s.storeFor(userID)
	if err != nil {
		return err
	}

	p, err := s.Repo.FindForStore(store.ID, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("Product not found")
		}
		return err
	}

	if p.ImagePath != "" {
		if err := s.Storage.Delete(p.ImagePath); err != nil {
			return err
		}
	}
	return s.Repo.Delete(p)
}
