package domain

import "context"

// Bairro representa um bairro vinculado a um município
type Bairro struct {
	CodigoBairro    int    `json:"codigoBairro"`
	CodigoMunicipio int    `json:"codigoMunicipio"`
	Nome            string `json:"nome"`
	Status          int    `json:"status"`
}

// BairroFiltro carrega os parâmetros de consulta permitidos para a tabela
// de bairros.
type BairroFiltro struct {
	CodigoBairro    *int
	CodigoMunicipio *int
	Nome            string
	Status          *int
}

// Unico indica se o filtro identifica no máximo um registro.
func (f BairroFiltro) Unico() bool {
	return f.CodigoBairro != nil
}

// BairroRepository define as operações com bairros
type BairroRepository interface {
	Buscar(ctx context.Context, filtro BairroFiltro) ([]Bairro, error)
	Criar(ctx context.Context, bairro *Bairro) error
	Atualizar(ctx context.Context, bairro *Bairro) error
	CodigoExistente(ctx context.Context, codigo int) (bool, error)
}
