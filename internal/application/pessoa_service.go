package application

import (
	"context"

	"github.com/HectorBonilhaa/cadastro_backend/internal/domain"
)

// PessoaService orquestra o agregado de pessoa: criação, leitura,
// atualização e exclusão da pessoa junto com sua coleção de endereços.
type PessoaService struct {
	repo domain.PessoaRepository
}

// NewPessoaService cria uma nova instância do serviço de pessoas
func NewPessoaService(repo domain.PessoaRepository) *PessoaService {
	return &PessoaService{
		repo: repo,
	}
}

// Buscar retorna a listagem filtrada de pessoas, sem endereços
func (s *PessoaService) Buscar(ctx context.Context, filtro domain.PessoaFiltro) ([]domain.Pessoa, error) {
	return s.repo.Buscar(ctx, filtro)
}

// BuscarPorCodigo retorna a pessoa com a hierarquia completa de endereços
func (s *PessoaService) BuscarPorCodigo(ctx context.Context, codigo int) (*domain.Pessoa, error) {
	pessoa, err := s.repo.BuscarPorCodigo(ctx, codigo)
	if err != nil {
		return nil, err
	}
	if pessoa == nil {
		return nil, domain.NovoErroNaoEncontrado("não existe uma pessoa com o código: %d", codigo)
	}
	return pessoa, nil
}

// Criar valida e insere a pessoa com todos os endereços informados.
// A gravação é tudo-ou-nada: uma falha em qualquer endereço desfaz a
// pessoa e os endereços já inseridos.
func (s *PessoaService) Criar(ctx context.Context, pessoa *domain.Pessoa) error {
	if pessoa.Status != 1 {
		return domain.NovoErroValidacao("não é possível adicionar um status com um número diferente de 1. Status informado: %d", pessoa.Status)
	}

	existente, err := s.repo.LoginExistente(ctx, pessoa.Login, 0)
	if err != nil {
		return err
	}
	if existente {
		return domain.NovoErroConflito("já existe um registro com o mesmo login: %s", pessoa.Login)
	}

	return s.repo.Criar(ctx, pessoa)
}

// Atualizar valida a pessoa, reconcilia a lista de endereços desejada com o
// estado persistido e aplica o plano resultante em uma única transação.
func (s *PessoaService) Atualizar(ctx context.Context, pessoa *domain.Pessoa) error {
	existe, err := s.repo.CodigoExistente(ctx, pessoa.CodigoPessoa)
	if err != nil {
		return err
	}
	if !existe {
		return domain.NovoErroValidacao("não foi possível alterar a pessoa, visto que não existe uma pessoa com o código: %d", pessoa.CodigoPessoa)
	}

	if pessoa.Status < 1 || pessoa.Status > 2 {
		return domain.NovoErroValidacao("não é possível adicionar um status menor que 1 ou maior que 2. Status informado: %d", pessoa.Status)
	}

	// Conflita apenas quando o login pertence a outro registro
	existente, err := s.repo.LoginExistente(ctx, pessoa.Login, pessoa.CodigoPessoa)
	if err != nil {
		return err
	}
	if existente {
		return domain.NovoErroConflito("já existe outro registro com o mesmo login: %s", pessoa.Login)
	}

	atuais, err := s.repo.BuscarEnderecos(ctx, pessoa.CodigoPessoa)
	if err != nil {
		return err
	}
	plano := ReconciliarEnderecos(atuais, pessoa.Enderecos)

	return s.repo.Atualizar(ctx, pessoa, plano)
}

// Excluir remove a pessoa e seus endereços em cascata
func (s *PessoaService) Excluir(ctx context.Context, codigo int) error {
	existe, err := s.repo.CodigoExistente(ctx, codigo)
	if err != nil {
		return err
	}
	if !existe {
		return domain.NovoErroValidacao("não foi possível excluir a pessoa, visto que não existe uma pessoa com o código: %d", codigo)
	}
	return s.repo.Excluir(ctx, codigo)
}
