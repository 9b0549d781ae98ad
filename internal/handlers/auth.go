package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ouroverde-system/internal/database/models"
	"ouroverde-system/internal/utils"
)

const tokenTTL = 24 * time.Hour

type AuthHandler struct {
	db *gorm.DB
}

func NewAuthHandler(db *gorm.DB) *AuthHandler {
	return &AuthHandler{db: db}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, detail("Informe usuário e senha"))
		return
	}

	var user models.Usuario
	if err := h.db.Where("username = ?", req.Username).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusUnauthorized, detail("Usuário ou senha inválidos"))
			return
		}
		c.JSON(http.StatusInternalServerError, detail("Erro no banco de dados"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, detail("Usuário ou senha inválidos"))
		return
	}

	token, _, err := utils.GenerateToken(user.ID, user.Username, tokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, detail("Erro ao gerar token"))
		return
	}

	now := time.Now()
	user.LastLogin = &now
	h.db.Save(&user)

	c.JSON(http.StatusOK, gin.H{"token": token, "username": user.Username})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, detail("Informe usuário e senha com pelo menos 6 caracteres"))
		return
	}

	var existing models.Usuario
	if err := h.db.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, detail("Usuário já existe"))
		return
	} else if err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, detail("Erro no banco de dados"))
		return
	}

	pwHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, detail("Erro ao processar senha"))
		return
	}

	user := models.Usuario{Username: req.Username, Password: string(pwHash)}
	if err := h.db.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, detail("Erro ao criar usuário"))
		return
	}

	token, _, err := utils.GenerateToken(user.ID, user.Username, tokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, detail("Erro ao gerar token"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "username": user.Username})
}

// SeedAdmin creates the configured admin account on first boot. A blank
// username disables seeding.
func SeedAdmin(db *gorm.DB, username, password string) error {
	if username == "" || password == "" {
		return nil
	}

	var existing models.Usuario
	err := db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	pwHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	log.Printf("Seeding admin user %q", username)
	return db.Create(&models.Usuario{Username: username, Password: string(pwHash)}).Error
}
