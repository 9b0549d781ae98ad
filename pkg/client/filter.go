package client

import "strings"

// FiltrarClientes narrows a customer list by a free-text term matched against
// nome, email and telefone, case-insensitively for the text fields.
func FiltrarClientes(clientes []Cliente, termo string) []Cliente {
	termo = strings.TrimSpace(termo)
	if termo == "" {
		return clientes
	}
	lower := strings.ToLower(termo)

	filtrados := make([]Cliente, 0, len(clientes))
	for _, c := range clientes {
		if strings.Contains(strings.ToLower(c.Nome), lower) {
			filtrados = append(filtrados, c)
			continue
		}
		if c.Email != nil && strings.Contains(strings.ToLower(*c.Email), lower) {
			filtrados = append(filtrados, c)
			continue
		}
		if strings.Contains(c.Telefone, termo) {
			filtrados = append(filtrados, c)
		}
	}
	return filtrados
}

// FiltrarProdutos narrows a product list by name term and exact tipo; empty
// arguments leave the corresponding dimension unfiltered.
func FiltrarProdutos(produtos []Produto, termo, tipo string) []Produto {
	termo = strings.TrimSpace(termo)
	lower := strings.ToLower(termo)

	filtrados := make([]Produto, 0, len(produtos))
	for _, p := range produtos {
		if termo != "" && !strings.Contains(strings.ToLower(p.Nome), lower) {
			continue
		}
		if tipo != "" && p.Tipo != tipo {
			continue
		}
		filtrados = append(filtrados, p)
	}
	return filtrados
}

// DistinctTipos extracts the product categories in first-seen order, for the
// catalog's tipo filter dropdown.
func DistinctTipos(produtos []Produto) []string {
	vistos := make(map[string]struct{}, len(produtos))
	tipos := make([]string, 0)
	for _, p := range produtos {
		if p.Tipo == "" {
			continue
		}
		if _, ok := vistos[p.Tipo]; ok {
			continue
		}
		vistos[p.Tipo] = struct{}{}
		tipos = append(tipos, p.Tipo)
	}
	return tipos
}
