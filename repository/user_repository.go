package repository

import (
	"campuseats/entity"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&cnt).Error
	return cnt, err
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", id).Updates(updates).Error
}

func (r *UserRepository) ListByRole(role string) ([]entity.User, error) {
	var users []entity.User
	err := r.DB.Where("role = ?", role).Order("id DESC").Find(&users).Error
	return users, err
}

func (r *UserRepository) ListAll() ([]entity.User, error) {
	var users []entity.User
	err := r.DB.Order("id DESC").Find(&users).Error
	return users, err
}

// vendors waiting on admin approval
func (r *UserRepository) ListPendingVendors() ([]entity.User, error) {
	var users []entity.User
	err := r.DB.Where("role = ? AND is_approved = ?", entity.RoleVendor, false).
		Order("id DESC").Find(&users).Error
	return users, err
}

func (r *UserRepository) SetApproval(id uint, approved bool) (int64, error) {
	res := r.DB.Model(&entity.User{}).
		Where("id = ? AND role = ?", id, entity.RoleVendor).
		Update("is_approved", approved)
	return res.RowsAffected, res.Error
}

func (r *UserRepository) SaveProfilePicture(id uint, path string) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", id).
		Update("profile_picture", path).Error
}
