package services

import (
	"errors"
	"mime/multipart"

	"campuseats/entity"
	"campuseats/pkg/storage"
	"campuseats/repository"

	"gorm.io/gorm"
)

type StoreService struct {
	Repo    *repository.StoreRepository
	Storage *storage.Storage
}

func NewStoreService(repo *repository.StoreRepository, st *storage.Storage) *StoreService {
	return &StoreService{Repo: repo, Storage: st}
}

type StoreIn struct {
	BusinessName   string `json:"business_name" form:"business_name" binding:"required,max=255"`
	BusinessType   string `json:"business_type" form:"business_type" binding:"required,max=255"`
	Description    string `json:"description" form:"description" binding:"omitempty,max=2000"`
	Address        string `json:"address" form:"address" binding:"omitempty,max=500"`
	ContactNumber  string `json:"contact_number" form:"contact_number" binding:"omitempty,max=50"`
	OperatingHours string `json:"operating_hours" form:"operating_hours" binding:"omitempty,max=255"`
}

// CreateStore enforces at most one store per account via lookup-before-create.
func (s *StoreService) CreateStore(userID uint, in *StoreIn) (*entity.Store, error) {
	if _, err := s.Repo.FindByUserID(userID); err == nil {
		return nil, conflict("Store already exists for this account")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	store := &entity.Store{
		BusinessName:   in.BusinessName,
		BusinessType:   in.BusinessType,
		Description:    in.Description,
		Address:        in.Address,
		ContactNumber:  in.ContactNumber,
		OperatingHours: in.OperatingHours,
		UserID:         userID,
	}
	if err := s.Repo.Create(store); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *StoreService) UpdateStore(userID uint, in *StoreIn, image *multipart.FileHeader) (*entity.Store, error) {
	store, err := s.Repo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Store not found")
		}
		return nil, err
	}

	updates := map[string]any{
		"business_name":   in.BusinessName,
		"business_type":   in.BusinessType,
		"description":     in.Description,
		"address":         in.Address,
		"contact_number":  in.ContactNumber,
		"operating_hours": in.OperatingHours,
	}

	if image != nil {
		// old file goes first; a crash between delete and write loses the
		// image, accepted
		if store.StoreImage != "" {
			if err := s.Storage.Delete(store.StoreImage); err != nil {
				return nil, err
			}
		}
		path, err := s.Storage.SaveImage(image, "stores")
		if err != nil {
			return nil, err
		}
		updates["store_image"] = path
	}

	if err := s.Repo.Update(store.ID, updates); err != nil {
		return nil, err
	}
	return s.Repo.FindByID(store.ID)
}

func (s *StoreService) VendorStore(userID uint) (*entity.Store, error) {
	store, err := s.Repo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("No store found for this vendor")
		}
		return nil, err
	}
	return store, nil
}

func (s *StoreService) ListStores() ([]entity.Store, error) {
	return s.Repo.ListAll()
}
