package repository

import (
	"campuseats/entity"

	"gorm.io/gorm"
)

type FeedbackRepository struct {
	DB *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{DB: db}
}

func (r *FeedbackRepository) Create(f *entity.Feedback) error {
	return r.DB.Create(f).Error
}

type FeedbackFilter struct {
	StoreID   *uint
	MinRating *int
	MaxRating *int
	Page      int
	PerPage   int
}

func (r *FeedbackRepository) List(filter FeedbackFilter) ([]entity.Feedback, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PerPage <= 0 || filter.PerPage > 100 {
		filter.PerPage = 20
	}

	q := r.DB.Model(&entity.Feedback{})
	if filter.StoreID != nil {
		q = q.Where("store_id = ?", *filter.StoreID)
	}
	if filter.MinRating != nil {
		q = q.Where("rating >= ?", *filter.MinRating)
	}
	if filter.MaxRating != nil {
		q = q.Where("rating <= ?", *filter.MaxRating)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []entity.Feedback
	err := q.Preload("User").Preload("Store").
		Order("created_at DESC").
		Limit(filter.PerPage).
		Offset((filter.Page - 1) * filter.PerPage).
		Find(&items).Error
	return items, total, err
}
