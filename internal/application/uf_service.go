package application

import (
	"context"

	"github.com/HectorBonilhaa/cadastro_backend/internal/domain"
)

type UFService struct {
	repo domain.UFRepository
}

// NewUFService cria uma nova instância do serviço de UFs
func NewUFService(repo domain.UFRepository) *UFService {
	return &UFService{
		repo: repo,
	}
}

func (s *UFService) Buscar(ctx context.Context, filtro domain.UFFiltro) ([]domain.UF, error) {
	return s.repo.Buscar(ctx, filtro)
}

// Criar valida unicidade de nome e sigla e o status de criação antes de inserir
func (s *UFService) Criar(ctx context.Context, uf *domain.UF) error {
	existente, err := s.repo.NomeExistente(ctx, uf.Nome, 0)
	if err != nil {
		return err
	}
	if existente {
		return domain.NovoErroConflito("já existe um registro com o mesmo nome: %s", uf.Nome)
	}

	if uf.Status != 1 {
		return domain.NovoErroValidacao("não é possível adicionar um status com um número diferente de 1. Status informado: %d", uf.Status)
	}

	existente, err = s.repo.SiglaExistente(ctx, uf.Sigla, 0)
	if err != nil {
		return err
	}
	if existente {
		return domain.NovoErroConflito("já existe um registro com a mesma sigla: %s", uf.Sigla)
	}

	return s.repo.Criar(ctx, uf)
}

// Atualizar valida existência, status e unicidade excluindo o próprio registro
func (s *UFService) Atualizar(ctx context.Context, uf *domain.UF) error {
	existe, err := s.repo.CodigoExistente(ctx, uf.CodigoUF)
	if err != nil {
		return err
	}
	if !existe {
		return domain.NovoErroValidacao("não foi possível alterar a UF, visto que não existe uma UF com o código: %d", uf.CodigoUF)
	}

	if uf.Status < 1 || uf.Status > 2 {
		return domain.NovoErroValidacao("não é possível adicionar um status menor que 1 ou maior que 2. Status informado: %d", uf.Status)
	}

	existente, err := s.repo.SiglaExistente(ctx, uf.Sigla, uf.CodigoUF)
	if err != nil {
		return err
	}
	if existente {
		return domain.NovoErroConflito("já existe outro registro com a mesma sigla: %s", uf.Sigla)
	}

	existente, err = s.repo.NomeExistente(ctx, uf.Nome, uf.CodigoUF)
	if err != nil {
		return err
	}
	if existente {
		return domain.NovoErroConflito("já existe outro registro com o mesmo nome: %s", uf.Nome)
	}

	return s.repo.Atualizar(ctx, uf)
}

// Excluir remove a UF; o repositório responde com ErroNaoEncontrado quando
// o código não existe
func (s *UFService) Excluir(ctx context.Context, codigo int) error {
	return s.repo.Excluir(ctx, codigo)
}
