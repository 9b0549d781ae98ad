package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"ouroverde-system/internal/analytics"
	"ouroverde-system/internal/database/models"
)

type AnalyticsHandler struct {
	db *gorm.DB
}

func NewAnalyticsHandler(db *gorm.DB) *AnalyticsHandler {
	return &AnalyticsHandler{db: db}
}

func (h *AnalyticsHandler) fetchPedidos(inicio, fim *time.Time) ([]models.Pedido, error) {
	q := h.db.Model(&models.Pedido{}).Preload("Itens")
	if inicio != nil {
		q = q.Where("data_pedido >= ?", *inicio)
	}
	if fim != nil {
		q = q.Where("data_pedido <= ?", *fim)
	}

	var pedidos []models.Pedido
	err := q.Find(&pedidos).Error
	return pedidos, err
}

func (h *AnalyticsHandler) pedidosDoPeriodo(c *gin.Context) ([]models.Pedido, bool) {
	inicio, fim, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, detail("Período inválido"))
		return nil, false
	}

	pedidos, err := h.fetchPedidos(inicio, fim)
	if err != nil {
		c.JSON(http.StatusInternalServerError, detail("Erro ao carregar dados do dashboard"))
		return nil, false
	}
	return pedidos, true
}

func (h *AnalyticsHandler) Resumo(c *gin.Context) {
	pedidos, ok := h.pedidosDoPeriodo(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, analytics.CalcularResumo(pedidos))
}

func (h *AnalyticsHandler) VendasPorDia(c *gin.Context) {
	pedidos, ok := h.pedidosDoPeriodo(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, analytics.VendasPorDia(pedidos))
}

// VendasPorMes ignores dataInicio/dataFim and buckets the requested year.
func (h *AnalyticsHandler) VendasPorMes(c *gin.Context) {
	ano, err := strconv.Atoi(c.DefaultQuery("ano", strconv.Itoa(time.Now().Year())))
	if err != nil {
		c.JSON(http.StatusBadRequest, detail("Ano inválido"))
		return
	}

	inicio := time.Date(ano, time.January, 1, 0, 0, 0, 0, time.UTC)
	fim := inicio.AddDate(1, 0, 0).Add(-time.Nanosecond)

	pedidos, err := h.fetchPedidos(&inicio, &fim)
	if err != nil {
		c.JSON(http.StatusInternalServerError, detail("Erro ao carregar dados do dashboard"))
		return
	}
	c.JSON(http.StatusOK, analytics.VendasPorMes(pedidos))
}

func (h *AnalyticsHandler) VendasPorProduto(c *gin.Context) {
	pedidos, ok := h.pedidosDoPeriodo(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, analytics.VendasPorProduto(pedidos))
}

func (h *AnalyticsHandler) TopProdutos(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, detail("Limite inválido"))
		return
	}

	pedidos, ok := h.pedidosDoPeriodo(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, analytics.TopProdutos(pedidos, limit))
}

func (h *AnalyticsHandler) VendasPorCategoria(c *gin.Context) {
	pedidos, ok := h.pedidosDoPeriodo(c)
	if !ok {
		return
	}

	var produtos []models.Produto
	if err := h.db.Find(&produtos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, detail("Erro ao carregar dados do dashboard"))
		return
	}

	tipoPorProduto := make(map[int64]string, len(produtos))
	for _, p := range produtos {
		tipoPorProduto[p.ID] = p.Tipo
	}

	c.JSON(http.StatusOK, analytics.VendasPorCategoria(pedidos, tipoPorProduto))
}

func (h *AnalyticsHandler) ProdutosPorMes(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limitProdutos", "5"))
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, detail("Limite inválido"))
		return
	}

	pedidos, ok := h.pedidosDoPeriodo(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, analytics.ProdutosPorMes(pedidos, limit))
}
