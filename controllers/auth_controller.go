package controllers

import (
	"campuseats/pkg/resp"
	"campuseats/pkg/storage"
	"campuseats/services"
	"campuseats/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Svc     *services.AuthService
	Storage *storage.Storage
}

func NewAuthController(svc *services.AuthService, st *storage.Storage) *AuthController {
	return &AuthController{Svc: svc, Storage: st}
}

type RegisterReq struct {
	Firstname string `json:"firstname" binding:"required,max=255"`
	Lastname  string `json:"lastname" binding:"required,max=255"`
	Gender    string `json:"gender" binding:"omitempty,max=50"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	Role      string `json:"role" binding:"omitempty,oneof=customer vendor"`
}

// POST /auth/register
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ValidationFailed(c, bindingErrors(err))
		return
	}

	user, err := ac.Svc.Register(req.Email, req.Password, req.Firstname, req.Lastname, req.Gender, req.Role)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.Created(c, "Registered successfully", gin.H{"user": user})
}

type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ValidationFailed(c, bindingErrors(err))
		return
	}

	token, user, err := ac.Svc.Login(req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(c, "Invalid credentials")
		return
	}
	resp.OK(c, "Logged in successfully", gin.H{"token": token, "user": user})
}

// POST /auth/logout: tokens are stateless, the client just drops it
func (ac *AuthController) Logout(c *gin.Context) {
	resp.OK(c, "Logged out successfully", nil)
}

// GET /user/profile
func (ac *AuthController) Me(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	user, err := ac.Svc.GetProfile(uid)
	if err != nil {
		resp.NotFound(c, "User not found")
		return
	}

	resp.OK(c, "Profile retrieved successfully", gin.H{
		"user":                user,
		"profile_picture_url": ac.Storage.URL(user.ProfilePicture),
	})
}
