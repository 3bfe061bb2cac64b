package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yashwardhan0703/ecomerce-backend/models"
	"github.com/yashwardhan0703/ecomerce-backend/services"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Signup registers a customer account and returns a token.
func (ac *AuthController) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload")
		return
	}

	user, token, appErr := ac.auth.Signup(c.Request.Context(), req)
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered successfully",
		"user":    user,
		"token":   token,
	})
}

func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload")
		return
	}

	user, token, appErr := ac.auth.Login(c.Request.Context(), req)
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"user":    user,
		"token":   token,
	})
}

// AdminRegister creates an admin account.
func (ac *AuthController) AdminRegister(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload")
		return
	}

	user, token, appErr := ac.auth.AdminRegister(c.Request.Context(), req)
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Admin registered successfully",
		"user":    user,
		"token":   token,
	})
}

// AdminLogin authenticates only accounts holding the admin role.
func (ac *AuthController) AdminLogin(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload")
		return
	}

	user, token, appErr := ac.auth.AdminLogin(c.Request.Context(), req)
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"user":    user,
		"token":   token,
	})
}

// Logout acknowledges the session end. Tokens are stateless, so the client
// discards its copy; nothing is revoked server-side.
func (ac *AuthController) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged out successfully",
	})
}

// Me returns the authenticated user's profile.
func (ac *AuthController) Me(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	user, appErr := ac.auth.CurrentUser(c.Request.Context(), userID)
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

// ListUsers returns all accounts. Admin only.
func (ac *AuthController) ListUsers(c *gin.Context) {
	users, appErr := ac.auth.ListUsers(c.Request.Context())
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(users),
		"users":   users,
	})
}
