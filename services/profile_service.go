package services

import (
	"errors"
	"mime/multipart"

	"campuseats/pkg/storage"
	"campuseats/repository"

	"gorm.io/gorm"
)

type ProfileService struct {
	UserRepo *repository.UserRepository
	Storage  *storage.Storage
}

func NewProfileService(userRepo *repository.UserRepository, st *storage.Storage) *ProfileService {
	return &ProfileService{UserRepo: userRepo, Storage: st}
}

// UploadPicture replaces the user's profile picture. The old file is deleted
// before the new one is written; not atomic.
func (s *ProfileService) UploadPicture(userID uint, file *multipart.FileHeader) (string, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return "", err
	}

	if user.ProfilePicture != "" {
		if err := s.Storage.Delete(user.ProfilePicture); err != nil {
			return "", err
		}
	}

	path, err := s.Storage.SaveImage(file, "profiles")
	if err != nil {
		return "", err
	}
	if err := s.UserRepo.SaveProfilePicture(userID, path); err != nil {
		return "", err
	}
	return s.Storage.URL(path), nil
}

func (s *ProfileService) DeletePicture(userID uint) error {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return err
	}
	if user.ProfilePicture == "" {
		return nil
	}
	if err := s.Storage.Delete(user.ProfilePicture); err != nil {
		return err
	}
	return s.UserRepo.SaveProfilePicture(userID, "")
}

func (s *ProfileService) PictureURL(userID uint) (string, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", notFound("User not found")
		}
		return "", err
	}
	if user.ProfilePicture == "" {
		return "", nil
	}
	return s.Storage.URL(user.ProfilePicture), nil
}
