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

type ProdutoHandler struct {
	db    *gorm.DB
	redis *redis.Client
}

func NewProdutoHandler(db *gorm.DB, redisClient *redis.Client) *ProdutoHandler {
	return &ProdutoHandler{db: db, redis: redisClient}
}

type ProdutoCreate struct {
	Nome             string   `json:"nome" binding:"required"`
	Tipo             string   `json:"tipo" binding:"required"`
	Porcionamento    string   `json:"porcionamento" binding:"required"`
	QtdPorcionamento float64  `json:"qtd_porcionamento" binding:"required"`
	ValorUnitario    float64  `json:"valor_unitario" binding:"required"`
	EstoqueAtual     *float64 `json:"estoque_atual,omitempty"`
}

func (h *ProdutoHandler) invalidateCache(ctx context.Context) {
	h.redis.Del(ctx, cacheProdutosKey)
}

func (h *ProdutoHandler) List(c *gin.Context) {
	search := c.Query("search")
	tipo := c.Query("tipo")

	if search == "" && tipo == "" {
		if cached, err := h.redis.Get(c.Request.Context(), cacheProdutosKey).Result(); err == nil {
			var produtos []models.Produto
			if json.Unmarshal([]byte(cached), &produtos) == nil {
				c.JSON(http.StatusOK, produtos)
				return
			}
		}
	}

	query := h.db.Model(&models.Produto{})
	if search != "" {
		query = query.Where("nome ILIKE ?", "%"+search+"%")
	}
	if tipo != "" {
		query = query.Where("tipo = ?", tipo)
	}

	var produtos []models.Produto
	if err := query.Order("cp ASC").Find(&produtos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, detail("Erro ao carregar produtos"))
		return
	}

	if search == "" && tipo == "" {
		if payload, err := json.Marshal(produtos); err == nil {
			h.redis.Set(c.Request.Context(), cacheProdutosKey, payload, cacheTTLShort)
		}
	}

	c.JSON(http.StatusOK, produtos)
}

// GetByCP resolves a product by its display code, the fast path used
// during sale entry.
func (h *ProdutoHandler) GetByCP(c *gin.Context) {
	cp, err := strconv.Atoi(c.Param("cp"))
	if err != nil {
		c.JSON(http.StatusBadRequest, detail("Código inválido"))
		return
	}

	var produto models.Produto
	if err := h.db.Where("cp = ?", cp).First(&produto).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, detail("Produto não encontrado"))
			return
		}
		c.JSON(http.StatusInternalServerError, detail("Erro no banco de dados"))
		return
	}

	c.JSON(http.StatusOK, produto)
}

func (h *ProdutoHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, detail("ID inválido"))
		return
	}

	var produto models.Produto
	if err := h.db.First(&produto, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, detail("Produto não encontrado"))
			return
		}
		c.JSON(http.StatusInternalServerError, detail("Erro no banco de dados"))
		return
	}

	c.JSON(http.StatusOK, produto)
}

func (h *ProdutoHandler) Create(c *gin.Context) {
	var req ProdutoCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, detail("Preencha todos os campos obrigatórios"))
		return
	}

	estoque := 0.0
	if req.EstoqueAtual != nil {
		estoque = *req.EstoqueAtual
	}

	produto := models.Produto{
		Nome:             req.Nome,
		Tipo:             req.Tipo,
		Porcionamento:    req.Porcionamento,
		QtdPorcionamento: req.QtdPorcionamento,
		ValorUnitario:    req.ValorUnitario,
		EstoqueAtual:     estoque,
	}

	// CP is assigned sequentially from the highest code in the catalog.
	err := h.db.Transaction(func(tx *gorm.DB) error {
		var maxCP int
		if err := tx.Model(&models.Produto{}).
			Select("COALESCE(MAX(cp), 0)").Scan(&maxCP).Error; err != nil {
			return err
		}
		produto.CP = maxCP + 1
		return tx.Create(&produto).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, detail("Erro ao salvar produto"))
		return
	}

	h.invalidateCache(c.Request.Context())
	c.JSON(http.StatusOK, produto)
}

func (h *ProdutoHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, detail("ID inválido"))
		return
	}

	var req ProdutoCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, detail("Preencha todos os campos obrigatórios"))
		return
	}

	var produto models.Produto
	if err := h.db.First(&produto, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, detail("Produto não encontrado"))
			return
		}
		c.JSON(http.StatusInternalServerError, detail("Erro no banco de dados"))
		return
	}

	produto.Nome = req.Nome
	produto.Tipo = req.Tipo
	produto.Porcionamento = req.Porcionamento
	produto.QtdPorcionamento = req.QtdPorcionamento
	produto.ValorUnitario = req.ValorUnitario
	if req.EstoqueAtual != nil {
		produto.EstoqueAtual = *req.EstoqueAtual
	}

	if err := h.db.Save(&produto).Error; err != nil {
		c.JSON(http.StatusInternalServerError, detail("Erro ao salvar produto"))
		return
	}

	h.invalidateCache(c.Request.Context())
	c.JSON(http.StatusOK, produto)
}

func (h *ProdutoHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, detail("ID inválido"))
		return
	}

	result := h.db.Delete(&models.Produto{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, detail("Erro ao excluir produto"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, detail("Produto não encontrado"))
		return
	}

	h.invalidateCache(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "Produto excluído com sucesso"})
}
