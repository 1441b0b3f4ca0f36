package controllers

import (
	"strconv"

	"campuseats/pkg/resp"
	"campuseats/services"
	"campuseats/utils"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	Svc *services.ProfileService
}

func NewProfileController(svc *services.ProfileService) *ProfileController {
	return &ProfileController{Svc: svc}
}

// POST /profile/picture/upload
func (pc *ProfileController) UploadPicture(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	file, err := c.FormFile("picture")
	if err != nil {
		resp.ValidationFailed(c, map[string]string{"picture": "The picture field is required"})
		return
	}

	url, err := pc.Svc.UploadPicture(uid, file)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, "Profile picture uploaded successfully", gin.H{"profile_picture_url": url})
}

// DELETE /profile/picture
func (pc *ProfileController) DeletePicture(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	if err := pc.Svc.DeletePicture(uid); err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, "Profile picture deleted successfully", nil)
}

// GET /profile/picture/:userId
func (pc *ProfileController) GetPicture(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		resp.NotFound(c, "User not found")
		return
	}

	url, svcErr := pc.Svc.PictureURL(uint(id))
	if svcErr != nil {
		serviceError(c, svcErr)
		return
	}
	resp.OK(c, "Profile picture retrieved successfully", gin.H{"profile_picture_url": url})
}
