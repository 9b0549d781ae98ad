// Package client is the Go consumer of the Ouro Verde REST API: it owns the
// session, attaches the Bearer token to every request and exposes typed
// methods for each resource.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"ouroverde-system/pkg/period"
)

type Client struct {
	baseURL string
	http    *http.Client
	sessao  *Sessao
}

func New(baseURL string, sessao *Sessao) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
		sessao:  sessao,
	}
}

// APIError carries the server's {"detail": ...} message.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("erro na requisição (HTTP %d)", e.Status)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var payload *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		payload = bytes.NewReader(raw)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, payload)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.sessao.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: resp.StatusCode}
		var parsed struct {
			Detail string `json:"detail"`
		}
		if json.NewDecoder(resp.Body).Decode(&parsed) == nil {
			apiErr.Detail = parsed.Detail
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// --- Sessão ---

// Login authenticates and persists the returned token; on failure the
// session stays unauthenticated and the server's message is returned.
func (c *Client) Login(ctx context.Context, username, password string) error {
	var resp struct {
		Token    string `json:"token"`
		Username string `json:"username"`
	}
	err := c.do(ctx, http.MethodPost, "/api/auth/login",
		nil, map[string]string{"username": username, "password": password}, &resp)
	if err != nil {
		return err
	}
	return c.sessao.Definir(resp.Token, resp.Username)
}

func (c *Client) Logout() error {
	return c.sessao.Limpar()
}

func (c *Client) Autenticado() bool {
	return c.sessao.Autenticada()
}

func (c *Client) Sessao() *Sessao {
	return c.sessao
}

// --- Clientes ---

func (c *Client) ListarClientes(ctx context.Context) ([]Cliente, error) {
	var clientes []Cliente
	if err := c.do(ctx, http.MethodGet, "/api/clientes", nil, nil, &clientes); err != nil {
		return nil, err
	}
	return clientes, nil
}

func (c *Client) CriarCliente(ctx context.Context, req ClienteCreate) (*Cliente, error) {
	var cliente Cliente
	if err := c.do(ctx, http.MethodPost, "/api/clientes", nil, req, &cliente); err != nil {
		return nil, err
	}
	return &cliente, nil
}

func (c *Client) AtualizarCliente(ctx context.Context, id int64, req ClienteCreate) (*Cliente, error) {
	var cliente Cliente
	path := fmt.Sprintf("/api/clientes/%d", id)
	if err := c.do(ctx, http.MethodPut, path, nil, req, &cliente); err != nil {
		return nil, err
	}
	return &cliente, nil
}

func (c *Client) ExcluirCliente(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/clientes/%d", id), nil, nil, nil)
}

// --- Produtos ---

func (c *Client) ListarProdutos(ctx context.Context) ([]Produto, error) {
	var produtos []Produto
	if err := c.do(ctx, http.MethodGet, "/api/produtos", nil, nil, &produtos); err != nil {
		return nil, err
	}
	return produtos, nil
}

// BuscarProdutoPorCP resolves a display code during sale entry; a missing
// code returns an *APIError with status 404.
func (c *Client) BuscarProdutoPorCP(ctx context.Context, cp int) (*Produto, error) {
	var produto Produto
	path := fmt.Sprintf("/api/produtos/cp/%d", cp)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &produto); err != nil {
		return nil, err
	}
	return &produto, nil
}

func (c *Client) CriarProduto(ctx context.Context, req ProdutoCreate) (*Produto, error) {
	var produto Produto
	if err := c.do(ctx, http.MethodPost, "/api/produtos", nil, req, &produto); err != nil {
		return nil, err
	}
	return &produto, nil
}

func (c *Client) AtualizarProduto(ctx context.Context, id int64, req ProdutoCreate) (*Produto, error) {
	var produto Produto
	path := fmt.Sprintf("/api/produtos/%d", id)
	if err := c.do(ctx, http.MethodPut, path, nil, req, &produto); err != nil {
		return nil, err
	}
	return &produto, nil
}

func (c *Client) ExcluirProduto(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/produtos/%d", id), nil, nil, nil)
}

// --- Pedidos ---

func (c *Client) CriarPedido(ctx context.Context, req PedidoCreate) (*Pedido, error) {
	var pedido Pedido
	if err := c.do(ctx, http.MethodPost, "/api/pedidos", nil, req, &pedido); err != nil {
		return nil, err
	}
	return &pedido, nil
}

func (c *Client) BuscarPedido(ctx context.Context, id int64) (*Pedido, error) {
	var pedido Pedido
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/pedidos/%d", id), nil, nil, &pedido); err != nil {
		return nil, err
	}
	return &pedido, nil
}

type HistoricoFiltro struct {
	Page      int
	PageSize  int
	Intervalo *period.Intervalo
	ClienteID *int64
}

type PaginaPedidos struct {
	Pedidos    []Pedido `json:"pedidos"`
	TotalCount int64    `json:"totalCount"`

	Page     int `json:"-"`
	PageSize int `json:"-"`
}

// TotalPages derives the page count from the server-reported total.
func (p PaginaPedidos) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}
	return int((p.TotalCount + int64(p.PageSize) - 1) / int64(p.PageSize))
}

// TemProxima gates the "next page" action: false once page >= totalPages.
func (p PaginaPedidos) TemProxima() bool {
	return p.Page < p.TotalPages()
}

func (p PaginaPedidos) TemAnterior() bool {
	return p.Page > 1
}

func (c *Client) ListarPedidos(ctx context.Context, filtro HistoricoFiltro) (*PaginaPedidos, error) {
	page := filtro.Page
	if page <= 0 {
		page = 1
	}
	pageSize := filtro.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("pageSize", strconv.Itoa(pageSize))
	if filtro.Intervalo != nil {
		query.Set("dataInicio", filtro.Intervalo.DataInicio())
		query.Set("dataFim", filtro.Intervalo.DataFim())
	}
	if filtro.ClienteID != nil {
		query.Set("clienteId", strconv.FormatInt(*filtro.ClienteID, 10))
	}

	var pagina PaginaPedidos
	if err := c.do(ctx, http.MethodGet, "/api/pedidos", query, nil, &pagina); err != nil {
		return nil, err
	}
	pagina.Page = page
	pagina.PageSize = pageSize
	return &pagina, nil
}
