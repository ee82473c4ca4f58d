package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/andratama/topupstore-golang/internal/apperror"
	"github.com/andratama/topupstore-golang/internal/middleware"
	"github.com/andratama/topupstore-golang/internal/models"
	"github.com/gin-gonic/gin"
)

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /api/auth/login. Unknown usernames and wrong passwords
// produce the same answer so account existence never leaks.
func (h *Handlers) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.respondError(c, apperror.BadRequest(err.Error()))
		return
	}

	user, err := h.Users.GetByUsername(input.Username)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if user == nil {
		h.respondError(c, apperror.Unauthorized("Invalid credentials"))
		return
	}

	password := models.Password{Hash: user.PasswordHash}
	match, err := password.Matches(input.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if !match {
		h.respondError(c, apperror.Unauthorized("Invalid credentials"))
		return
	}

	ttl := time.Duration(h.Config.JWT.TTLHours) * time.Hour
	token, err := h.Tokens.Generate(user.ID, user.Username)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.setSessionCookie(c, token, int(ttl.Seconds()))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"data": gin.H{
			"token":    token,
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

// Logout handles POST /api/auth/logout.
func (h *Handlers) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	respondMessage(c, "Logged out successfully")
}

// Me handles GET /api/auth/me (protected).
func (h *Handlers) Me(c *gin.Context) {
	userID := c.GetInt64(middleware.UserIDKey)

	user, err := h.Users.GetByID(userID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if user == nil {
		h.respondError(c, apperror.NotFound("User not found"))
		return
	}

	respondOK(c, gin.H{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
	})
}

func (h *Handlers) setSessionCookie(c *gin.Context, token string, maxAge int) {
	secure := strings.HasPrefix(h.Config.Server.BaseURL, "https://")
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.TokenCookie, token, maxAge, "/", "", secure, true)
}
