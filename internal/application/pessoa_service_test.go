package application

import (
	"context"
	"errors"
	"testing"

	"github.com/HectorBonilhaa/cadastro_backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPessoaService_Criar_StatusInvalido(t *testing.T) {
	service := NewPessoaService(&pessoaRepoMock{
		criarFn: func(ctx context.Context, pessoa *domain.Pessoa) error {
			t.Fatal("repositório não deveria ser chamado")
			return nil
		},
	})

	err := service.Criar(context.Background(), &domain.Pessoa{Login: "maria", Status: 2})

	var ev *domain.ErroValidacao
	require.ErrorAs(t, err, &ev)
	assert.Contains(t, ev.Mensagem, "diferente de 1")
}

func TestPessoaService_Criar_LoginDuplicado(t *testing.T) {
	service := NewPessoaService(&pessoaRepoMock{
		loginExistenteFn: func(ctx context.Context, login string, excluirCodigo int) (bool, error) {
			assert.Equal(t, "maria", login)
			assert.Zero(t, excluirCodigo)
			return true, nil
		},
	})

	err := service.Criar(context.Background(), &domain.Pessoa{Login: "maria", Status: 1})

	var ec *domain.ErroConflito
	require.ErrorAs(t, err, &ec)
	assert.Contains(t, ec.Mensagem, "maria")
}

func TestPessoaService_Criar_DelegaAoRepositorio(t *testing.T) {
	var recebida *domain.Pessoa
	service := NewPessoaService(&pessoaRepoMock{
		criarFn: func(ctx context.Context, pessoa *domain.Pessoa) error {
			recebida = pessoa
			return nil
		},
	})

	pessoa := &domain.Pessoa{
		Nome:   "Maria",
		Login:  "maria",
		Status: 1,
		Enderecos: []domain.Endereco{
			{CodigoBairro: 1, NomeRua: "Rua A", Numero: "10", Cep: "70000-000"},
		},
	}
	require.NoError(t, service.Criar(context.Background(), pessoa))
	assert.Same(t, pessoa, recebida)
}

func TestPessoaService_Atualizar_PessoaInexistente(t *testing.T) {
	service := NewPessoaService(&pessoaRepoMock{})

	err := service.Atualizar(context.Background(), &domain.Pessoa{CodigoPessoa: 9, Status: 1})

	var ev *domain.ErroValidacao
	require.ErrorAs(t, err, &ev)
	assert.Contains(t, ev.Mensagem, "não existe uma pessoa com o código: 9")
}

func TestPessoaService_Atualizar_StatusForaDoIntervalo(t *testing.T) {
	service := NewPessoaService(&pessoaRepoMock{
		codigoExistenteFn: func(ctx context.Context, codigo int) (bool, error) {
			return true, nil
		},
	})

	err := service.Atualizar(context.Background(), &domain.Pessoa{CodigoPessoa: 1, Status: 3})

	var ev *domain.ErroValidacao
	require.ErrorAs(t, err, &ev)
	assert.Contains(t, ev.Mensagem, "menor que 1 ou maior que 2")
}

// O login da própria pessoa não conta como duplicado na atualização.
func TestPessoaService_Atualizar_LoginIgnoraProprioRegistro(t *testing.T) {
	var excluiu int
	service := NewPessoaService(&pessoaRepoMock{
		codigoExistenteFn: func(ctx context.Context, codigo int) (bool, error) {
			return true, nil
		},
		loginExistenteFn: func(ctx context.Context, login string, excluirCodigo int) (bool, error) {
			excluiu = excluirCodigo
			return false, nil
		},
	})

	err := service.Atualizar(context.Background(), &domain.Pessoa{CodigoPessoa: 5, Login: "maria", Status: 1})

	require.NoError(t, err)
	assert.Equal(t, 5, excluiu)
}

func TestPessoaService_Atualizar_LoginDeOutroRegistro(t *testing.T) {
	service := NewPessoaService(&pessoaRepoMock{
		codigoExistenteFn: func(ctx context.Context, codigo int) (bool, error) {
			return true, nil
		},
		loginExistenteFn: func(ctx context.Context, login string, excluirCodigo int) (bool, error) {
			return true, nil
		},
	})

	err := service.Atualizar(context.Background(), &domain.Pessoa{CodigoPessoa: 5, Login: "maria", Status: 1})

	var ec *domain.ErroConflito
	require.ErrorAs(t, err, &ec)
	assert.Contains(t, ec.Mensagem, "outro registro")
}

// A atualização calcula o plano contra o estado persistido e o entrega
// inteiro ao repositório, que o aplica em uma transação.
func TestPessoaService_Atualizar_EntregaPlanoAoRepositorio(t *testing.T) {
	var plano domain.PlanoEnderecos
	service := NewPessoaService(&pessoaRepoMock{
		codigoExistenteFn: func(ctx context.Context, codigo int) (bool, error) {
			return true, nil
		},
		buscarEnderecosFn: func(ctx context.Context, codigoPessoa int) ([]domain.Endereco, error) {
			return []domain.Endereco{
				{CodigoEndereco: 1, NomeRua: "Rua A"},
				{CodigoEndereco: 2, NomeRua: "Rua B"},
				{CodigoEndereco: 3, NomeRua: "Rua C"},
			}, nil
		},
		atualizarFn: func(ctx context.Context, pessoa *domain.Pessoa, p domain.PlanoEnderecos) error {
			plano = p
			return nil
		},
	})

	pessoa := &domain.Pessoa{
		CodigoPessoa: 5,
		Login:        "maria",
		Status:       1,
		Enderecos: []domain.Endereco{
			{CodigoEndereco: 1, NomeRua: "Rua A alterada"},
			{NomeRua: "Rua D"},
		},
	}
	require.NoError(t, service.Atualizar(context.Background(), pessoa))

	assert.Equal(t, []int{2, 3}, plano.Excluir)
	require.Len(t, plano.Atualizar, 1)
	assert.Equal(t, "Rua A alterada", plano.Atualizar[0].NomeRua)
	require.Len(t, plano.Inserir, 1)
	assert.Equal(t, "Rua D", plano.Inserir[0].NomeRua)
}

func TestPessoaService_BuscarPorCodigo_NaoEncontrado(t *testing.T) {
	service := NewPessoaService(&pessoaRepoMock{})

	pessoa, err := service.BuscarPorCodigo(context.Background(), 42)

	assert.Nil(t, pessoa)
	var ene *domain.ErroNaoEncontrado
	require.ErrorAs(t, err, &ene)
	assert.Contains(t, ene.Mensagem, "42")
}

func TestPessoaService_BuscarPorCodigo_PropagaErro(t *testing.T) {
	falha := domain.NovoErroPersistencia("buscar pessoa", errors.New("conexão recusada"))
	service := NewPessoaService(&pessoaRepoMock{
		buscarPorCodigoFn: func(ctx context.Context, codigo int) (*domain.Pessoa, error) {
			return nil, falha
		},
	})

	_, err := service.BuscarPorCodigo(context.Background(), 1)

	assert.ErrorIs(t, err, falha)
}

func TestPessoaService_Excluir_PessoaInexistente(t *testing.T) {
	service := NewPessoaService(&pessoaRepoMock{
		excluirFn: func(ctx context.Context, codigo int) error {
			t.Fatal("repositório não deveria ser chamado")
			return nil
		},
	})

	err := service.Excluir(context.Background(), 7)

	var ev *domain.ErroValidacao
	require.ErrorAs(t, err, &ev)
	assert.Contains(t, ev.Mensagem, "7")
}

func TestPessoaService_Excluir_Delega(t *testing.T) {
	var excluido int
	service := NewPessoaService(&pessoaRepoMock{
		codigoExistenteFn: func(ctx context.Context, codigo int) (bool, error) {
			return true, nil
		},
		excluirFn: func(ctx context.Context, codigo int) error {
			excluido = codigo
			return nil
		},
	})

	require.NoError(t, service.Excluir(context.Background(), 7))
	assert.Equal(t, 7, excluido)
}
