package application

import (
	"context"

	"github.com/HectorBonilhaa/cadastro_backend/internal/domain"
)

type EnderecoService struct {
	repo       domain.EnderecoRepository
	pessoaRepo domain.PessoaRepository
	bairroRepo domain.BairroRepository
}

// NewEnderecoService cria uma nova instância do serviço de endereços avulsos
func NewEnderecoService(repo domain.EnderecoRepository, pessoaRepo domain.PessoaRepository, bairroRepo domain.BairroRepository) *EnderecoService {
	return &EnderecoService{
		repo:       repo,
		pessoaRepo: pessoaRepo,
		bairroRepo: bairroRepo,
	}
}

func (s *EnderecoService) Buscar(ctx context.Context, filtro domain.EnderecoFiltro) ([]domain.Endereco, error) {
	return s.repo.Buscar(ctx, filtro)
}

// Criar valida a existência da pessoa e do bairro referenciados
func (s *EnderecoService) Criar(ctx context.Context, endereco *domain.Endereco) error {
	existe, err := s.pessoaRepo.CodigoExistente(ctx, endereco.CodigoPessoa)
	if err != nil {
		return err
	}
	if !existe {
		return domain.NovoErroValidacao("não foi possível incluir o endereço, visto que não existe uma pessoa com o código: %d", endereco.CodigoPessoa)
	}

	existe, err = s.bairroRepo.CodigoExistente(ctx, endereco.CodigoBairro)
	if err != nil {
		return err
	}
	if !existe {
		return domain.NovoErroValidacao("não foi possível incluir o endereço, visto que não existe um bairro com o código: %d", endereco.CodigoBairro)
	}

	return s.repo.Criar(ctx, endereco)
}

// Atualizar valida a existência do endereço e das referências antes do UPDATE
func (s *EnderecoService) Atualizar(ctx context.Context, endereco *domain.Endereco) error {
	existe, err := s.repo.CodigoExistente(ctx, endereco.CodigoEndereco)
	if err != nil {
		return err
	}
	if !existe {
		return domain.NovoErroValidacao("não foi possível alterar o endereço, visto que não existe um endereço com o código: %d", endereco.CodigoEndereco)
	}

	existe, err = s.pessoaRepo.CodigoExistente(ctx, endereco.CodigoPessoa)
	if err != nil {
		return err
	}
	if !existe {
		return domain.NovoErroValidacao("não foi possível alterar o endereço, visto que não existe uma pessoa com o código: %d", endereco.CodigoPessoa)
	}

	existe, err = s.bairroRepo.CodigoExistente(ctx, endereco.CodigoBairro)
	if err != nil {
		return err
	}
	if !existe {
		return domain.NovoErroValidacao("não foi possível alterar o endereço, visto que não existe um bairro com o código: %d", endereco.CodigoBairro)
	}

	return s.repo.Atualizar(ctx, endereco)
}

// Excluir remove o endereço pelo código
func (s *EnderecoService) Excluir(ctx context.Context, codigo int) error {
	return s.repo.Excluir(ctx, codigo)
}
