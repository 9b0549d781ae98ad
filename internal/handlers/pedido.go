package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"ouroverde-system/internal/database/models"
)

type PedidoHandler struct {
	db *gorm.DB
}

func NewPedidoHandler(db *gorm.DB) *PedidoHandler {
	return &PedidoHandler{db: db}
}

type ItemPedidoCreate struct {
	ProdutoID     int64   `json:"produto_id" binding:"required"`
	ProdutoNome   string  `json:"produto_nome" binding:"required"`
	Quantidade    float64 `json:"quantidade" binding:"required,gt=0"`
	ValorUnitario float64 `json:"valor_unitario"`
	ValorTotal    float64 `json:"valor_total"`
}

type PedidoCreate struct {
	ClienteID  *int64             `json:"cliente_id,omitempty"`
	TotalItens float64            `json:"total_itens"`
	ValorTotal float64            `json:"valor_total"`
	Observacao *string            `json:"observacao,omitempty"`
	Itens      []ItemPedidoCreate `json:"itens" binding:"required,min=1,dive"`
}

type ListPedidosQuery struct {
	Page      int    `form:"page,default=1"`
	PageSize  int    `form:"pageSize,default=20"`
	ClienteID *int64 `form:"clienteId,omitempty"`
}

func (h *PedidoHandler) Create(c *gin.Context) {
	var req PedidoCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, detail("Adicione pelo menos um item ao pedido"))
		return
	}

	pedido := models.Pedido{
		DataPedido: time.Now().UTC(),
		ClienteID:  req.ClienteID,
		TotalItens: req.TotalItens,
		ValorTotal: req.ValorTotal,
		Observacao: req.Observacao,
	}

	// Snapshot the customer record so the receipt survives later edits.
	if req.ClienteID != nil {
		var cliente models.Cliente
		if err := h.db.First(&cliente, *req.ClienteID).Error; err == nil {
			pedido.ClienteNome = &cliente.Nome
			pedido.ClienteTelefone = &cliente.Telefone
			pedido.ClienteEndereco = cliente.Endereco
		}
	}

	for _, item := range req.Itens {
		pedido.Itens = append(pedido.Itens, models.ItemPedido{
			ProdutoID:     item.ProdutoID,
			ProdutoNome:   item.ProdutoNome,
			Quantidade:    item.Quantidade,
			ValorUnitario: item.ValorUnitario,
			ValorTotal:    item.ValorTotal,
		})
	}

	if err := h.db.Create(&pedido).Error; err != nil {
		c.JSON(http.StatusInternalServerError, detail("Erro ao realizar venda"))
		return
	}

	c.JSON(http.StatusOK, pedido)
}

func (h *PedidoHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, detail("ID inválido"))
		return
	}

	var pedido models.Pedido
	if err := h.db.Preload("Itens").First(&pedido, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, detail("Pedido não encontrado"))
			return
		}
		c.JSON(http.StatusInternalServerError, detail("Erro no banco de dados"))
		return
	}

	c.JSON(http.StatusOK, pedido)
}

func (h *PedidoHandler) List(c *gin.Context) {
	var query ListPedidosQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, detail("Parâmetros de consulta inválidos"))
		return
	}

	inicio, fim, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, detail("Período inválido"))
		return
	}

	q := h.db.Model(&models.Pedido{})
	if inicio != nil {
		q = q.Where("data_pedido >= ?", *inicio)
	}
	if fim != nil {
		q = q.Where("data_pedido <= ?", *fim)
	}
	if query.ClienteID != nil {
		q = q.Where("cliente_id = ?", *query.ClienteID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, detail("Erro ao carregar pedidos"))
		return
	}

	pageSize := query.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}
	page := query.Page
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * pageSize

	var pedidos []models.Pedido
	if err := q.Preload("Itens").
		Order("data_pedido DESC").
		Offset(offset).Limit(pageSize).
		Find(&pedidos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, detail("Erro ao carregar pedidos"))
		return
	}

	if pedidos == nil {
		pedidos = []models.Pedido{}
	}

	c.JSON(http.StatusOK, gin.H{
		"pedidos":    pedidos,
		"totalCount": total,
	})
}
