// Package pos holds the in-progress sale: the product looked up by display
// code, the accumulated lines and the running totals. It performs no network
// I/O; lookups are issued and resolved by the caller.
package pos

import (
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"ouroverde-system/pkg/client"
)

// Modo distinguishes a walk-in sale from one tied to a registered customer.
type Modo string

const (
	SemCadastro Modo = "sem_cadastro"
	ComCadastro Modo = "com_cadastro"
)

var (
	ErrSemItens        = errors.New("o pedido precisa de pelo menos um item")
	ErrSemCliente      = errors.New("selecione um cliente para o pedido com cadastro")
	ErrSemSelecao      = errors.New("nenhum produto selecionado")
	ErrQuantidade      = errors.New("a quantidade deve ser maior que zero")
	ErrItemInexistente = errors.New("item inexistente")
)

// Draft is one order being assembled. Lookups are tagged with a sequence
// number so that a response arriving after a newer request is discarded.
type Draft struct {
	modo       Modo
	cliente    *client.Cliente
	observacao string

	lookupSeq   uint64
	selecionado *client.Produto

	itens []client.ItemPedido
}

func NewDraft() *Draft {
	return &Draft{modo: SemCadastro}
}

func (d *Draft) Modo() Modo { return d.modo }

// SetModo switches between walk-in and registered-customer sales. Leaving
// ComCadastro drops the chosen customer.
func (d *Draft) SetModo(m Modo) {
	d.modo = m
	if m == SemCadastro {
		d.cliente = nil
	}
}

func (d *Draft) SetCliente(c *client.Cliente) { d.cliente = c }
func (d *Draft) Cliente() *client.Cliente     { return d.cliente }

func (d *Draft) SetObservacao(obs string) { d.observacao = obs }

// IssueLookup registers intent to resolve the typed display code. An empty
// or non-numeric code clears the current selection and issues nothing.
// The returned seq must be echoed back through ResolveLookup.
func (d *Draft) IssueLookup(codigo string) (seq uint64, ok bool) {
	codigo = strings.TrimSpace(codigo)
	d.selecionado = nil
	if codigo == "" {
		return 0, false
	}
	if _, err := strconv.Atoi(codigo); err != nil {
		return 0, false
	}
	d.lookupSeq++
	return d.lookupSeq, true
}

// ResolveLookup applies a lookup response. Responses for anything but the
// most recent request are ignored; a nil produto records a failed lookup.
func (d *Draft) ResolveLookup(seq uint64, produto *client.Produto) {
	if seq != d.lookupSeq {
		return
	}
	d.selecionado = produto
}

func (d *Draft) Selecionado() *client.Produto { return d.selecionado }

// AddItem turns the current selection into an order line. Repeated codes
// stay as separate lines. The selection is cleared afterwards so the next
// code starts fresh.
func (d *Draft) AddItem(quantidade float64) error {
	if d.selecionado == nil {
		return ErrSemSelecao
	}
	if quantidade <= 0 {
		return ErrQuantidade
	}

	p := d.selecionado
	total := decimal.NewFromFloat(quantidade).
		Mul(decimal.NewFromFloat(p.ValorUnitario)).
		Round(2)

	d.itens = append(d.itens, client.ItemPedido{
		ProdutoID:     p.ID,
		ProdutoNome:   p.Nome,
		Quantidade:    quantidade,
		ValorUnitario: p.ValorUnitario,
		ValorTotal:    total.InexactFloat64(),
	})
	d.selecionado = nil
	return nil
}

func (d *Draft) RemoveItem(index int) error {
	if index < 0 || index >= len(d.itens) {
		return ErrItemInexistente
	}
	d.itens = append(d.itens[:index], d.itens[index+1:]...)
	return nil
}

func (d *Draft) Itens() []client.ItemPedido { return d.itens }

// Totais returns the running item-quantity and money totals.
func (d *Draft) Totais() (totalItens, valorTotal float64) {
	qtd := decimal.Zero
	valor := decimal.Zero
	for _, item := range d.itens {
		qtd = qtd.Add(decimal.NewFromFloat(item.Quantidade))
		valor = valor.Add(decimal.NewFromFloat(item.ValorTotal))
	}
	return qtd.InexactFloat64(), valor.Round(2).InexactFloat64()
}

// Checkout validates the draft and produces the order payload. The draft
// itself is left untouched so a failed submission can be retried.
func (d *Draft) Checkout() (client.PedidoCreate, error) {
	if len(d.itens) == 0 {
		return client.PedidoCreate{}, ErrSemItens
	}
	if d.modo == ComCadastro && d.cliente == nil {
		return client.PedidoCreate{}, ErrSemCliente
	}

	totalItens, valorTotal := d.Totais()
	pedido := client.PedidoCreate{
		TotalItens: totalItens,
		ValorTotal: valorTotal,
		Itens:      append([]client.ItemPedido(nil), d.itens...),
	}
	if d.modo == ComCadastro {
		pedido.ClienteID = &d.cliente.ID
	}
	if obs := strings.TrimSpace(d.observacao); obs != "" {
		pedido.Observacao = &obs
	}
	return pedido, nil
}

// Reset clears the draft for the next sale, keeping the chosen mode.
func (d *Draft) Reset() {
	d.cliente = nil
	d.observacao = ""
	d.selecionado = nil
	d.itens = nil
}
