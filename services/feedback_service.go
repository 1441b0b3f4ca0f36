package services

import (
	"campuseats/entity"
	"campuseats/repository"
)

type FeedbackService struct {
	Repo *repository.FeedbackRepository
}

func NewFeedbackService(repo *repository.FeedbackRepository) *FeedbackService {
	return &FeedbackService{Repo: repo}
}

type FeedbackIn struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"omitempty,max=2000"`
	StoreID *uint  `json:"store_id"`
}

// Create accepts feedback from anyone; userID zero means anonymous.
func (s *FeedbackService) Create(userID uint, in *FeedbackIn) (*entity.Feedback, error) {
	f := &entity.Feedback{
		Rating:  in.Rating,
		Comment: in.Comment,
		StoreID: in.StoreID,
	}
	if userID != 0 {
		f.UserID = &userID
	}
	if err := s.Repo.Create(f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *FeedbackService) List(filter repository.FeedbackFilter) ([]entity.Feedback, int64, error) {
	return s.Repo.List(filter)
}
