package application

import (
	"context"

	"github.com/HectorBonilhaa/cadastro_backend/internal/domain"
)

// Mocks das interfaces de repositório com campos de função, no padrão
// "só preencha o que o teste usa".

type pessoaRepoMock struct {
	buscarFn          func(ctx context.Context, filtro domain.PessoaFiltro) ([]domain.Pessoa, error)
	buscarPorCodigoFn func(ctx context.Context, codigo int) (*domain.Pessoa, error)
	buscarEnderecosFn func(ctx context.Context, codigoPessoa int) ([]domain.Endereco, error)
	criarFn           func(ctx context.Context, pessoa *domain.Pessoa) error
	atualizarFn       func(ctx context.Context, pessoa *domain.Pessoa, plano domain.PlanoEnderecos) error
	excluirFn         func(ctx context.Context, codigo int) error
	codigoExistenteFn func(ctx context.Context, codigo int) (bool, error)
	loginExistenteFn  func(ctx context.Context, login string, excluirCodigo int) (bool, error)
}

func (m *pessoaRepoMock) Buscar(ctx context.Context, filtro domain.PessoaFiltro) ([]domain.Pessoa, error) {
	if m.buscarFn == nil {
		return []domain.Pessoa{}, nil
	}
	return m.buscarFn(ctx, filtro)
}

func (m *pessoaRepoMock) BuscarPorCodigo(ctx context.Context, codigo int) (*domain.Pessoa, error) {
	if m.buscarPorCodigoFn == nil {
		return nil, nil
	}
	return m.buscarPorCodigoFn(ctx, codigo)
}

func (m *pessoaRepoMock) BuscarEnderecos(ctx context.Context, codigoPessoa int) ([]domain.Endereco, error) {
	if m.buscarEnderecosFn == nil {
		return []domain.Endereco{}, nil
	}
	return m.buscarEnderecosFn(ctx, codigoPessoa)
}

func (m *pessoaRepoMock) Criar(ctx context.Context, pessoa *domain.Pessoa) error {
	if m.criarFn == nil {
		return nil
	}
	return m.criarFn(ctx, pessoa)
}

func (m *pessoaRepoMock) Atualizar(ctx context.Context, pessoa *domain.Pessoa, plano domain.PlanoEnderecos) error {
	if m.atualizarFn == nil {
		return nil
	}
	return m.atualizarFn(ctx, pessoa, plano)
}

func (m *pessoaRepoMock) Excluir(ctx context.Context, codigo int) error {
	if m.excluirFn == nil {
		return nil
	}
	return m.excluirFn(ctx, codigo)
}

func (m *pessoaRepoMock) CodigoExistente(ctx context.Context, codigo int) (bool, error) {
	if m.codigoExistenteFn == nil {
		return false, nil
	}
	return m.codigoExistenteFn(ctx, codigo)
}

func (m *pessoaRepoMock) LoginExistente(ctx context.Context, login string, excluirCodigo int) (bool, error) {
	if m.loginExistenteFn == nil {
		return false, nil
	}
	return m.loginExistenteFn(ctx, login, excluirCodigo)
}

type ufRepoMock struct {
	buscarFn          func(ctx context.Context, filtro domain.UFFiltro) ([]domain.UF, error)
	criarFn           func(ctx context.Context, uf *domain.UF) error
	atualizarFn       func(ctx context.Context, uf *domain.UF) error
	excluirFn         func(ctx context.Context, codigo int) error
	codigoExistenteFn func(ctx context.Context, codigo int) (bool, error)
	siglaExistenteFn  func(ctx context.Context, sigla string, excluirCodigo int) (bool, error)
	nomeExistenteFn   func(ctx context.Context, nome string, excluirCodigo int) (bool, error)
}

func (m *ufRepoMock) Buscar(ctx context.Context, filtro domain.UFFiltro) ([]domain.UF, error) {
	if m.buscarFn == nil {
		return []domain.UF{}, nil
	}
	return m.buscarFn(ctx, filtro)
}

func (m *ufRepoMock) Criar(ctx context.Context, uf *domain.UF) error {
	if m.criarFn == nil {
		return nil
	}
	return m.criarFn(ctx, uf)
}

func (m *ufRepoMock) Atualizar(ctx context.Context, uf *domain.UF) error {
	if m.atualizarFn == nil {
		return nil
	}
	return m.atualizarFn(ctx, uf)
}

func (m *ufRepoMock) Excluir(ctx context.Context, codigo int) error {
	if m.excluirFn == nil {
		return nil
	}
	return m.excluirFn(ctx, codigo)
}

func (m *ufRepoMock) CodigoExistente(ctx context.Context, codigo int) (bool, error) {
	if m.codigoExistenteFn == nil {
		return false, nil
	}
	return m.codigoExistenteFn(ctx, codigo)
}

func (m *ufRepoMock) SiglaExistente(ctx context.Context, sigla string, excluirCodigo int) (bool, error) {
	if m.siglaExistenteFn == nil {
		return false, nil
	}
	return m.siglaExistenteFn(ctx, sigla, excluirCodigo)
}

func (m *ufRepoMock) NomeExistente(ctx context.Context, nome string, excluirCodigo int) (bool, error) {
	if m.nomeExistenteFn == nil {
		return false, nil
	}
	return m.nomeExistenteFn(ctx, nome, excluirCodigo)
}

type municipioRepoMock struct {
	buscarFn          func(ctx context.Context, filtro domain.MunicipioFiltro) ([]domain.Municipio, error)
	criarFn           func(ctx context.Context, municipio *domain.Municipio) error
	atualizarFn       func(ctx context.Context, municipio *domain.Municipio) error
	codigoExistenteFn func(ctx context.Context, codigo int) (bool, error)
}

func (m *municipioRepoMock) Buscar(ctx context.Context, filtro domain.MunicipioFiltro) ([]domain.Municipio, error) {
	if m.buscarFn == nil {
		return []domain.Municipio{}, nil
	}
	return m.buscarFn(ctx, filtro)
}

func (m *municipioRepoMock) Criar(ctx context.Context, municipio *domain.Municipio) error {
	if m.criarFn == nil {
		return nil
	}
	return m.criarFn(ctx, municipio)
}

func (m *municipioRepoMock) Atualizar(ctx context.Context, municipio *domain.Municipio) error {
	if m.atualizarFn == nil {
		return nil
	}
	return m.atualizarFn(ctx, municipio)
}

func (m *municipioRepoMock) CodigoExistente(ctx context.Context, codigo int) (bool, error) {
	if m.codigoExistenteFn == nil {
		return false, nil
	}
	return m.codigoExistenteFn(ctx, codigo)
}

type bairroRepoMock struct {
	buscarFn          func(ctx context.Context, filtro domain.BairroFiltro) ([]domain.Bairro, error)
	criarFn           func(ctx context.Context, bairro *domain.Bairro) error
	atualizarFn       func(ctx context.Context, bairro *domain.Bairro) error
	codigoExistenteFn func(ctx context.Context, codigo int) (bool, error)
}

func (m *bairroRepoMock) Buscar(ctx context.Context, filtro domain.BairroFiltro) ([]domain.Bairro, error) {
	if m.buscarFn == nil {
		return []domain.Bairro{}, nil
	}
	return m.buscarFn(ctx, filtro)
}

func (m *bairroRepoMock) Criar(ctx context.Context, bairro *domain.Bairro) error {
	if m.criarFn == nil {
		return nil
	}
	return m.criarFn(ctx, bairro)
}

func (m *bairroRepoMock) Atualizar(ctx context.Context, bairro *domain.Bairro) error {
	if m.atualizarFn == nil {
		return nil
	}
	return m.atualizarFn(ctx, bairro)
}

func (m *bairroRepoMock) CodigoExistente(ctx context.Context, codigo int) (bool, error) {
	if m.codigoExistenteFn == nil {
		return false, nil
	}
	return m.codigoExistenteFn(ctx, codigo)
}
