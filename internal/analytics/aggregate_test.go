package analytics

import (
	"testing"
	"time"

	"ouroverde-system/internal/database/models"
)

func strPtr(s string) *string { return &s }
func idPtr(i int64) *int64    { return &i }

func pedido(dia string, valor, itens float64, linhas ...models.ItemPedido) models.Pedido {
	t, err := time.Parse("2006-01-02", dia)
	if err != nil {
		panic(err)
	}
	return models.Pedido{
		DataPedido: t,
		ValorTotal: valor,
		TotalItens: itens,
		Itens:      linhas,
	}
}

func item(produtoID int64, nome string, qtd, unitario float64) models.ItemPedido {
	return models.ItemPedido{
		ProdutoID:     produtoID,
		ProdutoNome:   nome,
		Quantidade:    qtd,
		ValorUnitario: unitario,
		ValorTotal:    qtd * unitario,
	}
}

func TestCalcularResumo(t *testing.T) {
	p1 := pedido("2026-08-01", 10.50, 3, item(1, "Alface", 3, 3.50))
	p1.ClienteID = idPtr(7)
	p1.ClienteNome = strPtr("Ana")

	p2 := pedido("2026-08-02", 20.00, 4, item(2, "Tomate", 4, 5.00))
	p2.ClienteID = idPtr(8)
	p2.ClienteNome = strPtr("Bruno")

	p3 := pedido("2026-08-03", 7.00, 2, item(1, "Alface", 2, 3.50))
	p3.ClienteID = idPtr(7)
	p3.ClienteNome = strPtr("Ana")

	resumo := CalcularResumo([]models.Pedido{p1, p2, p3})

	if resumo.FaturamentoTotal != 37.50 {
		t.Errorf("faturamento = %v, want 37.50", resumo.FaturamentoTotal)
	}
	if resumo.TotalPedidos != 3 {
		t.Errorf("total pedidos = %d, want 3", resumo.TotalPedidos)
	}
	if resumo.TicketMedio != 12.50 {
		t.Errorf("ticket medio = %v, want 12.50", resumo.TicketMedio)
	}
	if resumo.ProdutoMaisVendido == nil || resumo.ProdutoMaisVendido.Nome != "Alface" {
		t.Errorf("produto mais vendido = %+v, want Alface", resumo.ProdutoMaisVendido)
	}
	if resumo.ProdutoMaisVendido.Quantidade != 5 {
		t.Errorf("quantidade mais vendida = %v, want 5", resumo.ProdutoMaisVendido.Quantidade)
	}
	if resumo.ClienteMaiorFaturamento == nil || resumo.ClienteMaiorFaturamento.Nome != "Bruno" {
		t.Errorf("cliente maior faturamento = %+v, want Bruno", resumo.ClienteMaiorFaturamento)
	}
	if resumo.ClienteMaiorFaturamento.Valor != 20.00 {
		t.Errorf("valor cliente = %v, want 20.00", resumo.ClienteMaiorFaturamento.Valor)
	}
}

func TestCalcularResumoVazio(t *testing.T) {
	resumo := CalcularResumo(nil)
	if resumo.FaturamentoTotal != 0 || resumo.TotalPedidos != 0 || resumo.TicketMedio != 0 {
		t.Errorf("resumo vazio = %+v", resumo)
	}
	if resumo.ProdutoMaisVendido != nil || resumo.ClienteMaiorFaturamento != nil {
		t.Errorf("destaques deveriam ser nulos: %+v", resumo)
	}
}

func TestVendasPorDia(t *testing.T) {
	pedidos := []models.Pedido{
		pedido("2026-08-02", 20.00, 4),
		pedido("2026-08-01", 10.00, 2),
		pedido("2026-08-01", 5.00, 1),
	}

	vendas := VendasPorDia(pedidos)
	if len(vendas) != 2 {
		t.Fatalf("dias = %d, want 2", len(vendas))
	}
	if vendas[0].Data != "2026-08-01" || vendas[0].Valor != 15.00 || vendas[0].Quantidade != 3 {
		t.Errorf("dia 1 = %+v", vendas[0])
	}
	if vendas[1].Data != "2026-08-02" || vendas[1].Valor != 20.00 {
		t.Errorf("dia 2 = %+v", vendas[1])
	}
}

func TestVendasPorMes(t *testing.T) {
	pedidos := []models.Pedido{
		pedido("2026-01-15", 10.00, 2),
		pedido("2026-01-20", 15.00, 3),
		pedido("2026-03-01", 8.00, 1),
	}

	vendas := VendasPorMes(pedidos)
	if len(vendas) != 2 {
		t.Fatalf("meses = %d, want 2", len(vendas))
	}
	if vendas[0].Mes != "2026-01" || vendas[0].Valor != 25.00 {
		t.Errorf("mes 1 = %+v", vendas[0])
	}
	if vendas[1].Mes != "2026-03" || vendas[1].Valor != 8.00 {
		t.Errorf("mes 2 = %+v", vendas[1])
	}
}

func TestVendasPorProdutoOrdenacao(t *testing.T) {
	pedidos := []models.Pedido{
		pedido("2026-08-01", 0, 0,
			item(1, "Alface", 2, 3.50),
			item(2, "Tomate", 3, 5.00),
		),
		pedido("2026-08-02", 0, 0, item(1, "Alface", 1, 3.50)),
	}

	vendas := VendasPorProduto(pedidos)
	if len(vendas) != 2 {
		t.Fatalf("produtos = %d, want 2", len(vendas))
	}
	if vendas[0].Produto != "Tomate" || vendas[0].Valor != 15.00 {
		t.Errorf("primeiro = %+v, want Tomate 15.00", vendas[0])
	}
	if vendas[1].Produto != "Alface" || vendas[1].Valor != 10.50 {
		t.Errorf("segundo = %+v, want Alface 10.50", vendas[1])
	}
}

func TestTopProdutosLimite(t *testing.T) {
	pedidos := []models.Pedido{
		pedido("2026-08-01", 0, 0,
			item(1, "Alface", 5, 3.50),
			item(2, "Tomate", 3, 5.00),
			item(3, "Couve", 8, 2.00),
		),
	}

	top := TopProdutos(pedidos, 2)
	if len(top) != 2 {
		t.Fatalf("top = %d, want 2", len(top))
	}
	if top[0].Produto != "Couve" || top[0].Quantidade != 8 {
		t.Errorf("primeiro = %+v, want Couve qtd 8", top[0])
	}
	if top[1].Produto != "Alface" || top[1].Quantidade != 5 {
		t.Errorf("segundo = %+v, want Alface qtd 5", top[1])
	}
}

func TestVendasPorCategoria(t *testing.T) {
	pedidos := []models.Pedido{
		pedido("2026-08-01", 0, 0,
			item(1, "Alface", 2, 3.50),
			item(2, "Tomate", 2, 5.00),
			item(99, "Produto Removido", 1, 4.00),
		),
	}
	tipos := map[int64]string{1: "Verdura", 2: "Legume"}

	vendas := VendasPorCategoria(pedidos, tipos)
	if len(vendas) != 3 {
		t.Fatalf("categorias = %d, want 3", len(vendas))
	}

	porCategoria := map[string]float64{}
	for _, v := range vendas {
		porCategoria[v.Categoria] = v.Valor
	}
	if porCategoria["Verdura"] != 7.00 {
		t.Errorf("Verdura = %v, want 7.00", porCategoria["Verdura"])
	}
	if porCategoria["Legume"] != 10.00 {
		t.Errorf("Legume = %v, want 10.00", porCategoria["Legume"])
	}
	if porCategoria[CategoriaOutros] != 4.00 {
		t.Errorf("Outros = %v, want 4.00", porCategoria[CategoriaOutros])
	}
}

func TestProdutosPorMes(t *testing.T) {
	pedidos := []models.Pedido{
		pedido("2026-01-10", 0, 0,
			item(1, "Alface", 10, 3.50),
			item(2, "Tomate", 2, 5.00),
			item(3, "Couve", 1, 2.00),
		),
		pedido("2026-02-10", 0, 0,
			item(1, "Alface", 4, 3.50),
		),
	}

	linhas := ProdutosPorMes(pedidos, 2)
	if len(linhas) != 2 {
		t.Fatalf("meses = %d, want 2", len(linhas))
	}

	jan := linhas[0]
	if jan["mes"] != "2026-01" {
		t.Errorf("mes 1 = %v", jan["mes"])
	}
	if jan["Alface"] != 35.00 {
		t.Errorf("Alface jan = %v, want 35.00", jan["Alface"])
	}
	if jan["Tomate"] != 10.00 {
		t.Errorf("Tomate jan = %v, want 10.00", jan["Tomate"])
	}
	if _, ok := jan["Couve"]; ok {
		t.Errorf("Couve não deveria entrar no top 2")
	}

	fev := linhas[1]
	if fev["mes"] != "2026-02" || fev["Alface"] != 14.00 {
		t.Errorf("fev = %v", fev)
	}
	if _, ok := fev["Tomate"]; ok {
		t.Errorf("Tomate não vendeu em fevereiro")
	}
}
