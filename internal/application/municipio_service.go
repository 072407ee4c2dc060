package application

import (
	"context"

	"github.com/HectorBonilhaa/cadastro_backend/internal/domain"
)

type MunicipioService struct {
	repo   domain.MunicipioRepository
	ufRepo domain.UFRepository
}

// NewMunicipioService cria uma nova instância do serviço de municípios
func NewMunicipioService(repo domain.MunicipioRepository, ufRepo domain.UFRepository) *MunicipioService {
	return &MunicipioService{
		repo:   repo,
		ufRepo: ufRepo,
	}
}

func (s *MunicipioService) Buscar(ctx context.Context, filtro domain.MunicipioFiltro) ([]domain.Municipio, error) {
	return s.repo.Buscar(ctx, filtro)
}

// Criar valida o status de criação e a existência da UF referenciada
func (s *MunicipioService) Criar(ctx context.Context, municipio *domain.Municipio) error {
	if municipio.Status != 1 {
		return domain.NovoErroValidacao("não é possível adicionar um status com um número diferente de 1. Status informado: %d", municipio.Status)
	}

	existe, err := s.ufRepo.CodigoExistente(ctx, municipio.CodigoUF)
	if err != nil {
		return err
	}
	if !existe {
		return domain.NovoErroValidacao("não foi possível incluir o município, visto que não existe uma UF com o código: %d", municipio.CodigoUF)
	}

	return s.repo.Criar(ctx, municipio)
}

// Atualizar valida existência do município, status e a UF referenciada
func (s *MunicipioService) Atualizar(ctx context.Context, municipio *domain.Municipio) error {
	existe, err := s.repo.CodigoExistente(ctx, municipio.CodigoMunicipio)
	if err != nil {
		return err
	}
	if !existe {
		return domain.NovoErroValidacao("não foi possível alterar o município, visto que não existe um município com o código: %d", municipio.CodigoMunicipio)
	}

	if municipio.Status < 1 || municipio.Status > 2 {
		return domain.NovoErroValidacao("não é possível adicionar um status menor que 1 ou maior que 2. Status informado: %d", municipio.Status)
	}

	existe, err = s.ufRepo.CodigoExistente(ctx, municipio.CodigoUF)
	if err != nil {
		return err
	}
	if !existe {
		return domain.NovoErroValidacao("não foi possível alterar o município, visto que não existe uma UF com o código: %d", municipio.CodigoUF)
	}

	return s.repo.Atualizar(ctx, municipio)
}
