// Package analytics computes the dashboard aggregates from order rows.
// All functions are pure: handlers fetch the orders for a date range and
// delegate here, so the arithmetic is testable without a database.
package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"ouroverde-system/internal/database/models"
)

type Resumo struct {
	FaturamentoTotal        float64          `json:"faturamento_total"`
	TotalPedidos            int64            `json:"total_pedidos"`
	TicketMedio             float64          `json:"ticket_medio"`
	ProdutoMaisVendido      *ProdutoDestaque `json:"produto_mais_vendido"`
	ClienteMaiorFaturamento *ClienteDestaque `json:"cliente_maior_faturamento"`
}

type ProdutoDestaque struct {
	Nome       string  `json:"nome"`
	Quantidade float64 `json:"quantidade"`
}

type ClienteDestaque struct {
	Nome  string  `json:"nome"`
	Valor float64 `json:"valor"`
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

// CategoriaOutros collects items whose product no longer exists in the catalog.
const CategoriaOutros = "Outros"

func round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func CalcularResumo(pedidos []models.Pedido) Resumo {
	faturamento := decimal.Zero
	for _, p := range pedidos {
		faturamento = faturamento.Add(decimal.NewFromFloat(p.ValorTotal))
	}

	resumo := Resumo{
		FaturamentoTotal: round2(faturamento),
		TotalPedidos:     int64(len(pedidos)),
	}

	if len(pedidos) > 0 {
		ticket := faturamento.Div(decimal.NewFromInt(int64(len(pedidos))))
		resumo.TicketMedio = round2(ticket)
	}

	qtdPorProduto := map[string]decimal.Decimal{}
	for _, p := range pedidos {
		for _, item := range p.Itens {
			qtdPorProduto[item.ProdutoNome] = qtdPorProduto[item.ProdutoNome].
				Add(decimal.NewFromFloat(item.Quantidade))
		}
	}
	if nome, qtd, ok := maior(qtdPorProduto); ok {
		resumo.ProdutoMaisVendido = &ProdutoDestaque{Nome: nome, Quantidade: round2(qtd)}
	}

	valorPorCliente := map[string]decimal.Decimal{}
	for _, p := range pedidos {
		if p.ClienteID == nil || p.ClienteNome == nil {
			continue
		}
		valorPorCliente[*p.ClienteNome] = valorPorCliente[*p.ClienteNome].
			Add(decimal.NewFromFloat(p.ValorTotal))
	}
	if nome, valor, ok := maior(valorPorCliente); ok {
		resumo.ClienteMaiorFaturamento = &ClienteDestaque{Nome: nome, Valor: round2(valor)}
	}

	return resumo
}

func VendasPorDia(pedidos []models.Pedido) []VendaDia {
	valores := map[string]decimal.Decimal{}
	quantidades := map[string]decimal.Decimal{}
	for _, p := range pedidos {
		dia := p.DataPedido.Format("2006-01-02")
		valores[dia] = valores[dia].Add(decimal.NewFromFloat(p.ValorTotal))
		quantidades[dia] = quantidades[dia].Add(decimal.NewFromFloat(p.TotalItens))
	}

	vendas := make([]VendaDia, 0, len(valores))
	for dia, valor := range valores {
		vendas = append(vendas, VendaDia{
			Data:       dia,
			Valor:      round2(valor),
			Quantidade: round2(quantidades[dia]),
		})
	}
	sort.Slice(vendas, func(i, j int) bool { return vendas[i].Data < vendas[j].Data })
	return vendas
}

func VendasPorMes(pedidos []models.Pedido) []VendaMes {
	valores := map[string]decimal.Decimal{}
	quantidades := map[string]decimal.Decimal{}
	for _, p := range pedidos {
		mes := p.DataPedido.Format("2006-01")
		valores[mes] = valores[mes].Add(decimal.NewFromFloat(p.ValorTotal))
		quantidades[mes] = quantidades[mes].Add(decimal.NewFromFloat(p.TotalItens))
	}

	vendas := make([]VendaMes, 0, len(valores))
	for mes, valor := range valores {
		vendas = append(vendas, VendaMes{
			Mes:        mes,
			Valor:      round2(valor),
			Quantidade: round2(quantidades[mes]),
		})
	}
	sort.Slice(vendas, func(i, j int) bool { return vendas[i].Mes < vendas[j].Mes })
	return vendas
}

func VendasPorProduto(pedidos []models.Pedido) []VendaProduto {
	valores := map[string]decimal.Decimal{}
	for _, p := range pedidos {
		for _, item := range p.Itens {
			valores[item.ProdutoNome] = valores[item.ProdutoNome].
				Add(decimal.NewFromFloat(item.ValorTotal))
		}
	}

	vendas := make([]VendaProduto, 0, len(valores))
	for produto, valor := range valores {
		vendas = append(vendas, VendaProduto{Produto: produto, Valor: round2(valor)})
	}
	sort.Slice(vendas, func(i, j int) bool {
		if vendas[i].Valor != vendas[j].Valor {
			return vendas[i].Valor > vendas[j].Valor
		}
		return vendas[i].Produto < vendas[j].Produto
	})
	return vendas
}

func TopProdutos(pedidos []models.Pedido, limit int) []TopProduto {
	quantidades := map[string]decimal.Decimal{}
	valores := map[string]decimal.Decimal{}
	for _, p := range pedidos {
		for _, item := range p.Itens {
			quantidades[item.ProdutoNome] = quantidades[item.ProdutoNome].
				Add(decimal.NewFromFloat(item.Quantidade))
			valores[item.ProdutoNome] = valores[item.ProdutoNome].
				Add(decimal.NewFromFloat(item.ValorTotal))
		}
	}

	top := make([]TopProduto, 0, len(quantidades))
	for produto, qtd := range quantidades {
		top = append(top, TopProduto{
			Produto:    produto,
			Quantidade: round2(qtd),
			Valor:      round2(valores[produto]),
		})
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Quantidade != top[j].Quantidade {
			return top[i].Quantidade > top[j].Quantidade
		}
		return top[i].Produto < top[j].Produto
	})

	if limit > 0 && len(top) > limit {
		top = top[:limit]
	}
	return top
}

// VendasPorCategoria groups item totals by the product's tipo, resolved via
// tipoPorProduto (product id -> tipo as currently cataloged).
func VendasPorCategoria(pedidos []models.Pedido, tipoPorProduto map[int64]string) []VendaCategoria {
	valores := map[string]decimal.Decimal{}
	for _, p := range pedidos {
		for _, item := range p.Itens {
			categoria, ok := tipoPorProduto[item.ProdutoID]
			if !ok || categoria == "" {
				categoria = CategoriaOutros
			}
			valores[categoria] = valores[categoria].Add(decimal.NewFromFloat(item.ValorTotal))
		}
	}

	vendas := make([]VendaCategoria, 0, len(valores))
	for categoria, valor := range valores {
		vendas = append(vendas, VendaCategoria{Categoria: categoria, Valor: round2(valor)})
	}
	sort.Slice(vendas, func(i, j int) bool {
		if vendas[i].Valor != vendas[j].Valor {
			return vendas[i].Valor > vendas[j].Valor
		}
		return vendas[i].Categoria < vendas[j].Categoria
	})
	return vendas
}

// ProdutosPorMes builds the month x product matrix for the line chart: one
// row per month keyed by "mes", one column per top product (by total value
// in the range) holding that product's monthly sales value.
func ProdutosPorMes(pedidos []models.Pedido, limitProdutos int) []map[string]interface{} {
	totalPorProduto := map[string]decimal.Decimal{}
	porMes := map[string]map[string]decimal.Decimal{}

	for _, p := range pedidos {
		mes := p.DataPedido.Format("2006-01")
		if porMes[mes] == nil {
			porMes[mes] = map[string]decimal.Decimal{}
		}
		for _, item := range p.Itens {
			valor := decimal.NewFromFloat(item.ValorTotal)
			totalPorProduto[item.ProdutoNome] = totalPorProduto[item.ProdutoNome].Add(valor)
			porMes[mes][item.ProdutoNome] = porMes[mes][item.ProdutoNome].Add(valor)
		}
	}

	ranking := make([]string, 0, len(totalPorProduto))
	for produto := range totalPorProduto {
		ranking = append(ranking, produto)
	}
	sort.Slice(ranking, func(i, j int) bool {
		cmp := totalPorProduto[ranking[i]].Cmp(totalPorProduto[ranking[j]])
		if cmp != 0 {
			return cmp > 0
		}
		return ranking[i] < ranking[j]
	})
	if limitProdutos > 0 && len(ranking) > limitProdutos {
		ranking = ranking[:limitProdutos]
	}

	meses := make([]string, 0, len(porMes))
	for mes := range porMes {
		meses = append(meses, mes)
	}
	sort.Strings(meses)

	linhas := make([]map[string]interface{}, 0, len(meses))
	for _, mes := range meses {
		linha := map[string]interface{}{"mes": mes}
		for _, produto := range ranking {
			if valor, ok := porMes[mes][produto]; ok {
				linha[produto] = round2(valor)
			}
		}
		linhas = append(linhas, linha)
	}
	return linhas
}

func maior(valores map[string]decimal.Decimal) (string, decimal.Decimal, bool) {
	var (
		nome  string
		valor decimal.Decimal
		found bool
	)
	for n, v := range valores {
		if !found || v.GreaterThan(valor) || (v.Equal(valor) && n < nome) {
			nome, valor, found = n, v, true
		}
	}
	return nome, valor, found
}
