package application

import (
	"context"
	"testing"

	"github.com/HectorBonilhaa/cadastro_backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type enderecoRepoMock struct {
	buscarFn          func(ctx context.Context, filtro domain.EnderecoFiltro) ([]domain.Endereco, error)
	criarFn           func(ctx context.Context, endereco *domain.Endereco) error
	atualizarFn       func(ctx context.Context, endereco *domain.Endereco) error
	excluirFn         func(ctx context.Context, codigo int) error
	codigoExistenteFn func(ctx context.Context, codigo int) (bool, error)
}

func (m *enderecoRepoMock) Buscar(ctx context.Context, filtro domain.EnderecoFiltro) ([]domain.Endereco, error) {
	if m.buscarFn == nil {
		return []domain.Endereco{}, nil
	}
	return m.buscarFn(ctx, filtro)
}

func (m *enderecoRepoMock) Criar(ctx context.Context, endereco *domain.Endereco) error {
	if m.criarFn == nil {
		return nil
	}
	return m.criarFn(ctx, endereco)
}

func (m *enderecoRepoMock) Atualizar(ctx context.Context, endereco *domain.Endereco) error {
	if m.atualizarFn == nil {
		return nil
	}
	return m.atualizarFn(ctx, endereco)
}

func (m *enderecoRepoMock) Excluir(ctx context.Context, codigo int) error {
	if m.excluirFn == nil {
		return nil
	}
	return m.excluirFn(ctx, codigo)
}

func (m *enderecoRepoMock) CodigoExistente(ctx context.Context, codigo int) (bool, error) {
	if m.codigoExistenteFn == nil {
		return false, nil
	}
	return m.codigoExistenteFn(ctx, codigo)
}

func TestEnderecoService_Criar_PessoaInexistente(t *testing.T) {
	service := NewEnderecoService(&enderecoRepoMock{}, &pessoaRepoMock{}, &bairroRepoMock{})

	err := service.Criar(context.Background(), &domain.Endereco{CodigoPessoa: 3, CodigoBairro: 1})

	var ev *domain.ErroValidacao
	require.ErrorAs(t, err, &ev)
	assert.Contains(t, ev.Mensagem, "não existe uma pessoa com o código: 3")
}

func TestEnderecoService_Criar_BairroInexistente(t *testing.T) {
	service := NewEnderecoService(
		&enderecoRepoMock{},
		&pessoaRepoMock{
			codigoExistenteFn: func(ctx context.Context, codigo int) (bool, error) {
				return true, nil
			},
		},
		&bairroRepoMock{},
	)

	err := service.Criar(context.Background(), &domain.Endereco{CodigoPessoa: 3, CodigoBairro: 8})

	var ev *domain.ErroValidacao
	require.ErrorAs(t, err, &ev)
	assert.Contains(t, ev.Mensagem, "não existe um bairro com o código: 8")
}

func TestEnderecoService_Criar_ReferenciasValidas(t *testing.T) {
	var criado *domain.Endereco
	service := NewEnderecoService(
		&enderecoRepoMock{
			criarFn: func(ctx context.Context, endereco *domain.Endereco) error {
				criado = endereco
				return nil
			},
		},
		&pessoaRepoMock{
			codigoExistenteFn: func(ctx context.Context, codigo int) (bool, error) {
				return true, nil
			},
		},
		&bairroRepoMock{
			codigoExistenteFn: func(ctx context.Context, codigo int) (bool, error) {
				return true, nil
			},
		},
	)

	endereco := &domain.Endereco{CodigoPessoa: 3, CodigoBairro: 8, NomeRua: "Rua A", Numero: "12", Cep: "70000-000"}
	require.NoError(t, service.Criar(context.Background(), endereco))
	assert.Same(t, endereco, criado)
}

func TestEnderecoService_Atualizar_EnderecoInexistente(t *testing.T) {
	service := NewEnderecoService(&enderecoRepoMock{}, &pessoaRepoMock{}, &bairroRepoMock{})

	err := service.Atualizar(context.Background(), &domain.Endereco{CodigoEndereco: 15})

	var ev *domain.ErroValidacao
	require.ErrorAs(t, err, &ev)
	assert.Contains(t, ev.Mensagem, "não existe um endereço com o código: 15")
}
