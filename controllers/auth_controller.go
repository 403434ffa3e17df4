// controllers/auth_controller.go
package controllers

import (
	"net/http"

	"homestay-backend/middleware"
	"homestay-backend/services"
	"homestay-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type registerPayload struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"omitempty,oneof=guest host"`
	Phone    string `json:"phone"`
}

type loginPayload struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	Users  *services.UserService
	Logger *zap.Logger
}

func NewAuthController(users *services.UserService, logger *zap.Logger) *AuthController {
	return &AuthController{Users: users, Logger: logger}
}

func (ctrl *AuthController) Register(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := ctrl.Users.Register(services.RegisterInput{
		Name:     payload.Name,
		Email:    payload.Email,
		Password: payload.Password,
		Role:     payload.Role,
		Phone:    payload.Phone,
	})
	if err != nil {
		respondError(c, ctrl.Logger, err)
		return
	}

	ctrl.respondWithToken(c, http.StatusCreated, user.ID, user.Role, gin.H{"user": user})
}

func (ctrl *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := ctrl.Users.Authenticate(payload.Email, payload.Password)
	if err != nil {
		respondError(c, ctrl.Logger, err)
		return
	}

	ctrl.respondWithToken(c, http.StatusOK, user.ID, user.Role, gin.H{"user": user})
}

// Me returns the authenticated user.
func (ctrl *AuthController) Me(c *gin.Context) {
	user, err := ctrl.Users.GetByID(middleware.CallerID(c))
	if err != nil {
		respondError(c, ctrl.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (ctrl *AuthController) respondWithToken(c *gin.Context, code int, userID uint, role string, body gin.H) {
	token, err := utils.CreateAccessToken(userID, role)
	if err != nil {
		respondError(c, ctrl.Logger, err)
		return
	}
	body["token"] = token
	c.JSON(code, body)
}
