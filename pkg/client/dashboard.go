package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"ouroverde-system/pkg/period"
)

// DashboardData bundles every aggregate the dashboard renders for one
// period. ProdutosPorMes rows are dynamic: a "mes" key plus one column per
// top product.
type DashboardData struct {
	Resumo             Resumo
	VendasPorDia       []VendaDia
	VendasPorMes       []VendaMes
	VendasPorProduto   []VendaProduto
	TopProdutos        []TopProduto
	VendasPorCategoria []VendaCategoria
	ProdutosPorMes     []map[string]interface{}
}

// Dashboard fetches all seven aggregates for the given period in parallel.
// The dashboard is a single unit: any failed fetch fails the whole load and
// no partial data is returned.
func (c *Client) Dashboard(ctx context.Context, intervalo period.Intervalo) (*DashboardData, error) {
	rangeQuery := url.Values{}
	rangeQuery.Set("dataInicio", intervalo.DataInicio())
	rangeQuery.Set("dataFim", intervalo.DataFim())

	anoQuery := url.Values{}
	anoQuery.Set("ano", strconv.Itoa(time.Now().Year()))

	topQuery := url.Values{}
	topQuery.Set("dataInicio", intervalo.DataInicio())
	topQuery.Set("dataFim", intervalo.DataFim())
	topQuery.Set("limit", "10")

	matrizQuery := url.Values{}
	matrizQuery.Set("limitProdutos", "5")

	var dados DashboardData

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.do(ctx, http.MethodGet, "/api/analytics/resumo", rangeQuery, nil, &dados.Resumo)
	})
	g.Go(func() error {
		return c.do(ctx, http.MethodGet, "/api/analytics/vendas-por-dia", rangeQuery, nil, &dados.VendasPorDia)
	})
	g.Go(func() error {
		return c.do(ctx, http.MethodGet, "/api/analytics/vendas-por-mes", anoQuery, nil, &dados.VendasPorMes)
	})
	g.Go(func() error {
		return c.do(ctx, http.MethodGet, "/api/analytics/vendas-por-produto", rangeQuery, nil, &dados.VendasPorProduto)
	})
	g.Go(func() error {
		return c.do(ctx, http.MethodGet, "/api/analytics/top-produtos", topQuery, nil, &dados.TopProdutos)
	})
	g.Go(func() error {
		return c.do(ctx, http.MethodGet, "/api/analytics/vendas-por-categoria", rangeQuery, nil, &dados.VendasPorCategoria)
	})
	g.Go(func() error {
		return c.do(ctx, http.MethodGet, "/api/analytics/produtos-por-mes", matrizQuery, nil, &dados.ProdutosPorMes)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &dados, nil
}
