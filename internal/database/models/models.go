package models

import "time"

// Usuario is the login account for the store staff.
type Usuario struct {
	ID        int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string     `gorm:"type:varchar(64);uniqueIndex;not null" json:"username"`
	Password  string     `gorm:"not null" json:"-"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

type Cliente struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Nome         string    `gorm:"type:varchar(128);not null" json:"nome"`
	Telefone     string    `gorm:"type:varchar(32);not null" json:"telefone"`
	Email        *string   `gorm:"type:varchar(128)" json:"email,omitempty"`
	Endereco     *string   `gorm:"type:varchar(256)" json:"endereco,omitempty"`
	Sexo         *string   `gorm:"type:varchar(16)" json:"sexo,omitempty"`
	Observacao   *string   `gorm:"type:text" json:"observacao,omitempty"`
	DataCadastro time.Time `gorm:"autoCreateTime" json:"data_cadastro"`
}

type Produto struct {
	ID               int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CP               int       `gorm:"uniqueIndex;not null" json:"cp"`
	Nome             string    `gorm:"type:varchar(128);not null" json:"nome"`
	Tipo             string    `gorm:"type:varchar(64);not null" json:"tipo"`
	Porcionamento    string    `gorm:"type:varchar(32);not null" json:"porcionamento"`
	QtdPorcionamento float64   `gorm:"not null" json:"qtd_porcionamento"`
	ValorUnitario    float64   `gorm:"not null" json:"valor_unitario"`
	EstoqueAtual     float64   `gorm:"not null;default:0" json:"estoque_atual"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"-"`
}

// Pedido is immutable after creation. Customer fields are a snapshot taken
// at sale time, so later customer edits never change old receipts.
type Pedido struct {
	ID              int64        `gorm:"primaryKey;autoIncrement" json:"id"`
	DataPedido      time.Time    `gorm:"index;not null" json:"data_pedido"`
	ClienteID       *int64       `gorm:"index" json:"cliente_id,omitempty"`
	ClienteNome     *string      `gorm:"type:varchar(128)" json:"cliente_nome,omitempty"`
	ClienteTelefone *string      `gorm:"type:varchar(32)" json:"cliente_telefone,omitempty"`
	ClienteEndereco *string      `gorm:"type:varchar(256)" json:"cliente_endereco,omitempty"`
	TotalItens      float64      `gorm:"not null" json:"total_itens"`
	ValorTotal      float64      `gorm:"not null" json:"valor_total"`
	Observacao      *string      `gorm:"type:text" json:"observacao,omitempty"`
	Itens           []ItemPedido `gorm:"foreignKey:PedidoID" json:"itens"`
}

// ItemPedido keeps the product name and unit price as sold, with no
// back-reference to the live product row.
type ItemPedido struct {
	ID            int64   `gorm:"primaryKey;autoIncrement" json:"-"`
	PedidoID      int64   `gorm:"index;not null" json:"-"`
	ProdutoID     int64   `gorm:"not null" json:"produto_id"`
	ProdutoNome   string  `gorm:"type:varchar(128);not null" json:"produto_nome"`
	Quantidade    float64 `gorm:"not null" json:"quantidade"`
	ValorUnitario float64 `gorm:"not null" json:"valor_unitario"`
	ValorTotal    float64 `gorm:"not null" json:"valor_total"`
}
