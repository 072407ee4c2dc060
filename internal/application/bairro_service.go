package application

import (
	"context"

	"github.com/HectorBonilhaa/cadastro_backend/internal/domain"
)

type BairroService struct {
	repo          domain.BairroRepository
	municipioRepo domain.MunicipioRepository
}

// NewBairroService cria uma nova instância do serviço de bairros
func NewBairroService(repo domain.BairroRepository, municipioRepo domain.MunicipioRepository) *BairroService {
	return &BairroService{
		repo:          repo,
		municipioRepo: municipioRepo,
	}
}

func (s *BairroService) Buscar(ctx context.Context, filtro domain.BairroFiltro) ([]domain.Bairro, error) {
	return s.repo.Buscar(ctx, filtro)
}

// Criar valida o status de criação e a existência do município referenciado
func (s *BairroService) Criar(ctx context.Context, bairro *domain.Bairro) error {
	if bairro.Status != 1 {
		return domain.NovoErroValidacao("não é possível adicionar um status com um número diferente de 1. Status informado: %d", bairro.Status)
	}

	existe, err := s.municipioRepo.CodigoExistente(ctx, bairro.CodigoMunicipio)
	if err != nil {
		return err
	}
	if !existe {
		return domain.NovoErroValidacao("não foi possível incluir o bairro, visto que não existe um município com o código: %d", bairro.CodigoMunicipio)
	}

	return s.repo.Criar(ctx, bairro)
}

// Atualizar valida existência do bairro, status e o município referenciado
func (s *BairroService) Atualizar(ctx context.Context, bairro *domain.Bairro) error {
	existe, err := s.repo.CodigoExistente(ctx, bairro.CodigoBairro)
	if err != nil {
		return err
	}
	if !existe {
		return domain.NovoErroValidacao("não foi possível alterar o bairro, visto que não existe um bairro com o código: %d", bairro.CodigoBairro)
	}

	if bairro.Status < 1 || bairro.Status > 2 {
		return domain.NovoErroValidacao("não é possível adicionar um status menor que 1 ou maior que 2. Status informado: %d", bairro.Status)
	}

	existe, err = s.municipioRepo.CodigoExistente(ctx, bairro.CodigoMunicipio)
	if err != nil {
		return err
	}
	if !existe {
		return domain.NovoErroValidacao("não foi possível alterar o bairro, visto que não existe um município com o código: %d", bairro.CodigoMunicipio)
	}

	return s.repo.Atualizar(ctx, bairro)
}
