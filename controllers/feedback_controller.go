package controllers

import (
	"strconv"

	"campuseats/pkg/resp"
	"campuseats/repository"
	"campuseats/services"
	"campuseats/utils"

	"github.com/gin-gonic/gin"
)

type FeedbackController struct {
	Svc *services.FeedbackService
}

func NewFeedbackController(svc *services.FeedbackService) *FeedbackController {
	return &FeedbackController{Svc: svc}
}

// POST /feedback: open to anonymous callers too
func (fc *FeedbackController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c) // zero when unauthenticated

	var in services.FeedbackIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.ValidationFailed(c, bindingErrors(err))
		return
	}

	feedback, err := fc.Svc.Create(uid, &in)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.Created(c, "Feedback submitted successfully", gin.H{"feedback": feedback})
}

// GET /feedback (admin) with optional store_id / min_rating / max_rating
func (fc *FeedbackController) Index(c *gin.Context) {
	var filter repository.FeedbackFilter

	if s := c.Query("store_id"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			id := uint(v)
			filter.StoreID = &id
		}
	}
	if s := c.Query("min_rating"); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			filter.MinRating = &v
		}
	}
	if s := c.Query("max_rating"); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			filter.MaxRating = &v
		}
	}
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.PerPage, _ = strconv.Atoi(c.DefaultQuery("per_page", "20"))

	items, total, err := fc.Svc.List(filter)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, "Feedback retrieved successfully", gin.H{
		"feedback": items,
		"total":    total,
		"page":     filter.Page,
		"per_page": filter.PerPage,
	})
}
