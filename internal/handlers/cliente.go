package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"ouroverde-system/internal/database/models"
)

type ClienteHandler struct {
	db    *gorm.DB
	redis *redis.Client
}

func NewClienteHandler(db *gorm.DB, redisClient *redis.Client) *ClienteHandler {
	return &ClienteHandler{db: db, redis: redisClient}
}

type ClienteCreate struct {
	Nome       string  `json:"nome" binding:"required"`
	Telefone   string  `json:"telefone" binding:"required"`
	Email      *string `json:"email,omitempty"`
	Endereco   *string `json:"endereco,omitempty"`
	Sexo       *string `json:"sexo,omitempty"`
	Observacao *string `json:"observacao,omitempty"`
}

func (h *ClienteHandler) invalidateCache(ctx context.Context) {
	h.redis.Del(ctx, cacheClientesKey)
}

func (h *ClienteHandler) List(c *gin.Context) {
	search := c.Query("search")

	// The unfiltered full list is the hot path (every screen loads it), so
	// only that variant is cached.
	if search == "" {
		if cached, err := h.redis.Get(c.Request.Context(), cacheClientesKey).Result(); err == nil {
			var clientes []models.Cliente
			if json.Unmarshal([]byte(cached), &clientes) == nil {
				c.JSON(http.StatusOK, clientes)
				return
			}
		}
	}

	query := h.db.Model(&models.Cliente{})
	if search != "" {
		term := "%" + search + "%"
		query = query.Where(
			"nome ILIKE ? OR telefone ILIKE ? OR email ILIKE ?",
			term, term, term,
		)
	}

	var clientes []models.Cliente
	if err := query.Order("nome ASC").Find(&clientes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, detail("Erro ao carregar clientes"))
		return
	}

	if search == "" {
		if payload, err := json.Marshal(clientes); err == nil {
			h.redis.Set(c.Request.Context(), cacheClientesKey, payload, cacheTTLShort)
		}
	}

	c.JSON(http.StatusOK, clientes)
}

func (h *ClienteHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, detail("ID inválido"))
		return
	}

	var cliente models.Cliente
	if err := h.db.First(&cliente, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, detail("Cliente não encontrado"))
			return
		}
		c.JSON(http.StatusInternalServerError, detail("Erro no banco de dados"))
		return
	}

	c.JSON(http.StatusOK, cliente)
}

func (h *ClienteHandler) Create(c *gin.Context) {
	var req ClienteCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, detail("Nome e telefone são obrigatórios"))
		return
	}

	cliente := models.Cliente{
		Nome:       req.Nome,
		Telefone:   req.Telefone,
		Email:      req.Email,
		Endereco:   req.Endereco,
		Sexo:       req.Sexo,
		Observacao: req.Observacao,
	}

	if err := h.db.Create(&cliente).Error; err != nil {
		c.JSON(http.StatusInternalServerError, detail("Erro ao salvar cliente"))
		return
	}

	h.invalidateCache(c.Request.Context())
	c.JSON(http.StatusOK, cliente)
}

func (h *ClienteHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, detail("ID inválido"))
		return
	}

	var req ClienteCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, detail("Nome e telefone são obrigatórios"))
		return
	}

	var cliente models.Cliente
	if err := h.db.First(&cliente, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, detail("Cliente não encontrado"))
			return
		}
		c.JSON(http.StatusInternalServerError, detail("Erro no banco de dados"))
		return
	}

	cliente.Nome = req.Nome
	cliente.Telefone = req.Telefone
	cliente.Email = req.Email
	cliente.Endereco = req.Endereco
	cliente.Sexo = req.Sexo
	cliente.Observacao = req.Observacao

	if err := h.db.Save(&cliente).Error; err != nil {
		c.JSON(http.StatusInternalServerError, detail("Erro ao salvar cliente"))
		return
	}

	h.invalidateCache(c.Request.Context())
	c.JSON(http.StatusOK, cliente)
}

func (h *ClienteHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, detail("ID inválido"))
		return
	}

	result := h.db.Delete(&models.Cliente{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, detail("Erro ao excluir cliente"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, detail("Cliente não encontrado"))
		return
	}

	h.invalidateCache(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "Cliente excluído com sucesso"})
}
