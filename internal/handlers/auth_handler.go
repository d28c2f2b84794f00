package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/auth"
	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/config"
	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/middleware"
	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/models"
	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	tokens *auth.TokenService
	config *config.Config

	// checkEmailDomain é substituível nos testes (a versão real faz
	// consulta DNS).
	checkEmailDomain func(string) bool
}

func NewAuthHandler(db *gorm.DB, tokens *auth.TokenService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		db:               db,
		tokens:           tokens,
		config:           cfg,
		checkEmailDomain: validators.IsEmailDomainValid,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Address  string `json:"address" binding:"required"`

	// AdminCode, quando bate com o segredo compartilhado, dá is_admin
	// no cadastro.
	AdminCode string `json:"admin_code"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Remember bool   `json:"remember"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !h.checkEmailDomain(email) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_email_domain",
			"message": "O domínio do e-mail informado não parece ser válido.",
		})
		return
	}

	var count int64
	h.db.Model(&models.User{}).
		Where("username = ? OR email = ?", req.Username, email).
		Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_already_exists"})
		return
	}

	user := models.User{
		Username:     req.Username,
		PasswordHash: auth.HashPassword(req.Password),
		Name:         req.Name,
		Email:        email,
		Phone:        req.Phone,
		Address:      req.Address,
		IsAdmin:      req.AdminCode != "" && req.AdminCode == h.config.AdminSecret,
	}

	if err := h.db.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user": userJSON(&user),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var user models.User
	if err := h.db.Where("username = ?", req.Username).First(&user).Error; err != nil {
		// Usuário desconhecido e senha errada respondem igual.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	cookieValue, err := h.tokens.Issue(c.Request.Context(), user.ID, auth.DefaultTokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_issue_token"})
		return
	}

	// "Lembrar de mim" persiste o cookie pelas 10h do token; sem a
	// opção, o cookie morre com a sessão do navegador.
	maxAge := 0
	if req.Remember {
		maxAge = auth.CookieMaxAge
	}
	c.SetCookie(
		auth.CookieName,
		cookieValue,
		maxAge,
		"/",
		"",
		h.config.IsProduction(),
		true,
	)

	c.JSON(http.StatusOK, gin.H{
		"user": userJSON(&user),
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	if cookie, err := c.Cookie(auth.CookieName); err == nil {
		h.tokens.Revoke(c.Request.Context(), userID, cookie)
	}

	c.SetCookie(auth.CookieName, "", -1, "/", "", h.config.IsProduction(), true)
	c.JSON(http.StatusOK, gin.H{"status": "logged_out"})
}

func (h *AuthHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": userJSON(&user)})
}

func userJSON(user *models.User) gin.H {
	return gin.H{
		"id":       user.ID,
		"username": user.Username,
		"name":     user.Name,
		"email":    user.Email,
		"phone":    user.Phone,
		"address":  user.Address,
		"is_admin": user.IsAdmin,
	}
}
