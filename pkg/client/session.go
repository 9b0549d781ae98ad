package client

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Sessao persists the authentication token, username and the sidebar
// preference across program runs. It is an explicit object handed to the
// Client, never package-level state.
type Sessao struct {
	path  string
	dados sessaoDados
}

type sessaoDados struct {
	Token         string `json:"token,omitempty"`
	Username      string `json:"username,omitempty"`
	SidebarAberta bool   `json:"sidebar_aberta"`
}

// AbrirSessao loads the session file if it exists; a missing file yields a
// fresh unauthenticated session with the sidebar open.
func AbrirSessao(path string) (*Sessao, error) {
	s := &Sessao{
		path:  path,
		dados: sessaoDados{SidebarAberta: true},
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(raw, &s.dados); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Sessao) Token() string       { return s.dados.Token }
func (s *Sessao) Username() string    { return s.dados.Username }
func (s *Sessao) Autenticada() bool   { return s.dados.Token != "" }
func (s *Sessao) SidebarAberta() bool { return s.dados.SidebarAberta }

// Definir stores the credentials returned by a successful login.
func (s *Sessao) Definir(token, username string) error {
	s.dados.Token = token
	s.dados.Username = username
	return s.salvar()
}

// Limpar drops the credentials on logout, keeping the sidebar preference.
func (s *Sessao) Limpar() error {
	s.dados.Token = ""
	s.dados.Username = ""
	return s.salvar()
}

func (s *Sessao) DefinirSidebar(aberta bool) error {
	s.dados.SidebarAberta = aberta
	return s.salvar()
}

func (s *Sessao) salvar() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(s.dados, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o600)
}
