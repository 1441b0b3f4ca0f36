package services

import (
	"errors"

	"campuseats/entity"
	"campuseats/repository"

	"gorm.io/gorm"
)

type AdminService struct {
	UserRepo *repository.UserRepository
}

func NewAdminService(userRepo *repository.UserRepository) *AdminService {
	return &AdminService{UserRepo: userRepo}
}

func (s *AdminService) PendingVendors() ([]entity.User, error) {
	return s.UserRepo.ListPendingVendors()
}

// ApproveVendor flips the approval flag; approval gates store visibility.
func (s *AdminService) ApproveVendor(userID uint) error {
	affected, err := s.UserRepo.SetApproval(userID, true)
	if err != nil {
		return err
	}
	if affected == 0 {
		return notFound("Vendor not found")
	}
	return nil
}

func (s *AdminService) RejectVendor(userID uint) error {
	affected, err := s.UserRepo.SetApproval(userID, false)
	if err != nil {
		return err
	}
	if affected == 0 {
		return notFound("Vendor not found")
	}
	return nil
}

func (s *AdminService) AllUsers() ([]entity.User, error) {
	return s.UserRepo.ListAll()
}

func (s *AdminService) UsersByRole(role string) ([]entity.User, error) {
	return s.UserRepo.ListByRole(role)
}

func (s *AdminService) GetUser(userID uint) (*entity.User, error) {
	u, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("User not found")
		}
		return nil, err
	}
	return u, nil
}
