package client

import "time"

type Cliente struct {
	ID           int64     `json:"id"`
	Nome         string    `json:"nome"`
	Telefone     string    `json:"telefone"`
	Email        *string   `json:"email,omitempty"`
	Endereco     *string   `json:"endereco,omitempty"`
	Sexo         *string   `json:"sexo,omitempty"`
	Observacao   *string   `json:"observacao,omitempty"`
	DataCadastro time.Time `json:"data_cadastro"`
}

type ClienteCreate struct {
	Nome       string  `json:"nome"`
	Telefone   string  `json:"telefone"`
	Email      *string `json:"email,omitempty"`
	Endereco   *string `json:"endereco,omitempty"`
	Sexo       *string `json:"sexo,omitempty"`
	Observacao *string `json:"observacao,omitempty"`
}

type Produto struct {
	ID               int64   `json:"id"`
	CP               int     `json:"cp"`
	Nome             string  `json:"nome"`
	Tipo             string  `json:"tipo"`
	Porcionamento    string  `json:"porcionamento"`
	QtdPorcionamento float64 `json:"qtd_porcionamento"`
	ValorUnitario    float64 `json:"valor_unitario"`
	EstoqueAtual     float64 `json:"estoque_atual"`
}

type ProdutoCreate struct {
	Nome             string   `json:"nome"`
	Tipo             string   `json:"tipo"`
	Porcionamento    string   `json:"porcionamento"`
	QtdPorcionamento float64  `json:"qtd_porcionamento"`
	ValorUnitario    float64  `json:"valor_unitario"`
	EstoqueAtual     *float64 `json:"estoque_atual,omitempty"`
}

type ItemPedido struct {
	ProdutoID     int64   `json:"produto_id"`
	ProdutoNome   string  `json:"produto_nome"`
	Quantidade    float64 `json:"quantidade"`
	ValorUnitario float64 `json:"valor_unitario"`
	ValorTotal    float64 `json:"valor_total"`
}

type Pedido struct {
	ID              int64        `json:"id"`
	DataPedido      time.Time    `json:"data_pedido"`
	ClienteID       *int64       `json:"cliente_id,omitempty"`
	ClienteNome     *string      `json:"cliente_nome,omitempty"`
	ClienteTelefone *string      `json:"cliente_telefone,omitempty"`
	ClienteEndereco *string      `json:"cliente_endereco,omitempty"`
	TotalItens      float64      `json:"total_itens"`
	ValorTotal      float64      `json:"valor_total"`
	Observacao      *string      `json:"observacao,omitempty"`
	Itens           []ItemPedido `json:"itens"`
}

type PedidoCreate struct {
	ClienteID  *int64       `json:"cliente_id"`
	TotalItens float64      `json:"total_itens"`
	ValorTotal float64      `json:"valor_total"`
	Observacao *string      `json:"observacao,omitempty"`
	Itens      []ItemPedido `json:"itens"`
}

// Dashboard aggregate shapes, mirroring the analytics endpoints.

type ProdutoDestaque struct {
	Nome       string  `json:"nome"`
	Quantidade float64 `json:"quantidade"`
}

type ClienteDestaque struct {
	Nome  string  `json:"nome"`
	Valor float64 `json:"valor"`
}

type Resumo struct {
	FaturamentoTotal        float64          `json:"faturamento_total"`
	TotalPedidos            int64            `json:"total_pedidos"`
	TicketMedio             float64          `json:"ticket_medio"`
	ProdutoMaisVendido      *ProdutoDestaque `json:"produto_mais_vendido"`
	ClienteMaiorFaturamento *ClienteDestaque `json:"cliente_maior_faturamento"`
}

type VendaDia struct {
	Data       string  `json:"data"`
	Valor      float64 `json:"valor"`
	Quantidade float64 `json:"quantidade"`
}

type VendaMes struct {
	Mes        string  `json:"mes"`
	Valor      float64 `json:"valor"`
	Quantidade float64 `json:"quantidade"`
}

type VendaProduto struct {
	Produto string  `json:"produto"`
	Valor   float64 `json:"valor"`
}

type TopProduto struct {
	Produto    string  `json:"produto"`
	Quantidade float64 `json:"quantidade"`
	Valor      float64 `json:"valor"`
}

type VendaCategoria struct {
	Categoria string  `json:"categoria"`
	Valor     float64 `json:"valor"`
}
