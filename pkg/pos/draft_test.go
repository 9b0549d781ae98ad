package pos

import (
	"errors"
	"testing"

	"ouroverde-system/pkg/client"
)

func produtoAlface() *client.Produto {
	return &client.Produto{ID: 1, CP: 7, Nome: "Alface", Tipo: "Folhas", ValorUnitario: 3.50}
}

func produtoTomate() *client.Produto {
	return &client.Produto{ID: 2, CP: 8, Nome: "Tomate", Tipo: "Legumes", ValorUnitario: 5.00}
}

func selecionar(t *testing.T, d *Draft, codigo string, p *client.Produto) {
	t.Helper()
	seq, ok := d.IssueLookup(codigo)
	if !ok {
		t.Fatalf("lookup de %q não foi emitido", codigo)
	}
	d.ResolveLookup(seq, p)
	if d.Selecionado() == nil {
		t.Fatalf("produto %s não selecionado", p.Nome)
	}
}

func TestAddItemCalculaTotalDaLinha(t *testing.T) {
	d := NewDraft()
	selecionar(t, d, "7", produtoAlface())

	if err := d.AddItem(2); err != nil {
		t.Fatal(err)
	}

	itens := d.Itens()
	if len(itens) != 1 {
		t.Fatalf("itens = %d", len(itens))
	}
	if itens[0].ProdutoNome != "Alface" || itens[0].ValorTotal != 7.00 {
		t.Errorf("linha = %+v", itens[0])
	}
	if d.Selecionado() != nil {
		t.Error("seleção deveria ser limpa após adicionar")
	}
}

func TestAddItemMesmoCodigoGeraLinhasSeparadas(t *testing.T) {
	d := NewDraft()
	selecionar(t, d, "7", produtoAlface())
	if err := d.AddItem(2); err != nil {
		t.Fatal(err)
	}
	selecionar(t, d, "7", produtoAlface())
	if err := d.AddItem(3); err != nil {
		t.Fatal(err)
	}

	if len(d.Itens()) != 2 {
		t.Fatalf("linhas repetidas deveriam ficar separadas, itens = %d", len(d.Itens()))
	}

	totalItens, valorTotal := d.Totais()
	if totalItens != 5 || valorTotal != 17.50 {
		t.Errorf("totais = %v itens, R$ %v", totalItens, valorTotal)
	}
}

func TestAddItemSemSelecao(t *testing.T) {
	d := NewDraft()
	if err := d.AddItem(1); !errors.Is(err, ErrSemSelecao) {
		t.Errorf("err = %v", err)
	}
}

func TestAddItemQuantidadeInvalida(t *testing.T) {
	d := NewDraft()
	selecionar(t, d, "7", produtoAlface())
	if err := d.AddItem(0); !errors.Is(err, ErrQuantidade) {
		t.Errorf("err = %v", err)
	}
	if err := d.AddItem(-1); !errors.Is(err, ErrQuantidade) {
		t.Errorf("err = %v", err)
	}
}

func TestIssueLookupCodigoVazioOuInvalido(t *testing.T) {
	d := NewDraft()
	selecionar(t, d, "7", produtoAlface())

	if _, ok := d.IssueLookup(""); ok {
		t.Error("código vazio não deveria emitir lookup")
	}
	if d.Selecionado() != nil {
		t.Error("código vazio deveria limpar a seleção")
	}

	if _, ok := d.IssueLookup("abc"); ok {
		t.Error("código não numérico não deveria emitir lookup")
	}
}

func TestResolveLookupDescartaRespostaAtrasada(t *testing.T) {
	d := NewDraft()

	seqAntiga, ok := d.IssueLookup("7")
	if !ok {
		t.Fatal("lookup não emitido")
	}
	seqNova, ok := d.IssueLookup("8")
	if !ok {
		t.Fatal("lookup não emitido")
	}

	// Resposta nova chega primeiro; a antiga, depois, deve ser ignorada.
	d.ResolveLookup(seqNova, produtoTomate())
	d.ResolveLookup(seqAntiga, produtoAlface())

	sel := d.Selecionado()
	if sel == nil || sel.Nome != "Tomate" {
		t.Errorf("seleção = %+v, esperava Tomate", sel)
	}
}

func TestResolveLookupFalhaLimpaSelecao(t *testing.T) {
	d := NewDraft()
	seq, _ := d.IssueLookup("99")
	d.ResolveLookup(seq, nil)
	if d.Selecionado() != nil {
		t.Error("lookup falho deveria deixar sem seleção")
	}
}

func TestRemoveItem(t *testing.T) {
	d := NewDraft()
	selecionar(t, d, "7", produtoAlface())
	_ = d.AddItem(1)
	selecionar(t, d, "8", produtoTomate())
	_ = d.AddItem(2)

	if err := d.RemoveItem(0); err != nil {
		t.Fatal(err)
	}
	itens := d.Itens()
	if len(itens) != 1 || itens[0].ProdutoNome != "Tomate" {
		t.Errorf("itens = %+v", itens)
	}

	if err := d.RemoveItem(5); !errors.Is(err, ErrItemInexistente) {
		t.Errorf("err = %v", err)
	}
}

func TestCheckoutSemItens(t *testing.T) {
	d := NewDraft()
	if _, err := d.Checkout(); !errors.Is(err, ErrSemItens) {
		t.Errorf("err = %v", err)
	}
}

func TestCheckoutComCadastroExigeCliente(t *testing.T) {
	d := NewDraft()
	d.SetModo(ComCadastro)
	selecionar(t, d, "7", produtoAlface())
	_ = d.AddItem(1)

	if _, err := d.Checkout(); !errors.Is(err, ErrSemCliente) {
		t.Errorf("err = %v", err)
	}

	d.SetCliente(&client.Cliente{ID: 42, Nome: "Bruno"})
	pedido, err := d.Checkout()
	if err != nil {
		t.Fatal(err)
	}
	if pedido.ClienteID == nil || *pedido.ClienteID != 42 {
		t.Errorf("cliente_id = %v", pedido.ClienteID)
	}
}

func TestCheckoutSemCadastro(t *testing.T) {
	d := NewDraft()
	d.SetObservacao("  entregar à tarde  ")
	selecionar(t, d, "7", produtoAlface())
	_ = d.AddItem(2)

	pedido, err := d.Checkout()
	if err != nil {
		t.Fatal(err)
	}
	if pedido.ClienteID != nil {
		t.Error("venda sem cadastro não deveria carregar cliente_id")
	}
	if pedido.TotalItens != 2 || pedido.ValorTotal != 7.00 {
		t.Errorf("totais = %v / %v", pedido.TotalItens, pedido.ValorTotal)
	}
	if pedido.Observacao == nil || *pedido.Observacao != "entregar à tarde" {
		t.Errorf("observacao = %v", pedido.Observacao)
	}
}

func TestCheckoutNaoConsomeDraft(t *testing.T) {
	d := NewDraft()
	selecionar(t, d, "7", produtoAlface())
	_ = d.AddItem(1)

	if _, err := d.Checkout(); err != nil {
		t.Fatal(err)
	}
	if len(d.Itens()) != 1 {
		t.Error("checkout não deveria esvaziar o draft")
	}

	d.Reset()
	if len(d.Itens()) != 0 || d.Selecionado() != nil {
		t.Error("reset deveria limpar o draft")
	}
}

func TestSetModoSemCadastroDescartaCliente(t *testing.T) {
	d := NewDraft()
	d.SetModo(ComCadastro)
	d.SetCliente(&client.Cliente{ID: 1, Nome: "Ana"})
	d.SetModo(SemCadastro)
	if d.Cliente() != nil {
		t.Error("voltar para sem cadastro deveria descartar o cliente")
	}
}
