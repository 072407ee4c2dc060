package domain

import "context"

// Municipio representa um município vinculado a uma UF
type Municipio struct {
	CodigoMunicipio int    `json:"codigoMunicipio"`
	CodigoUF        int    `json:"codigoUF"`
	Nome            string `json:"nome"`
	Status          int    `json:"status"`
	// UF é preenchida apenas na consulta de pessoa por código
	UF *UF `json:"uf,omitempty"`
}

// MunicipioFiltro carrega os parâmetros de consulta permitidos para a
// tabela de municípios.
type MunicipioFiltro struct {
	CodigoMunicipio *int
	CodigoUF        *int
	Nome            string
	Status          *int
}

// Unico indica se o filtro identifica no máximo um registro.
func (f MunicipioFiltro) Unico() bool {
	return f.CodigoMunicipio != nil
}

// MunicipioRepository define as operações com municípios
type MunicipioRepository interface {
	Buscar(ctx context.Context, filtro MunicipioFiltro) ([]Municipio, error)
	Criar(ctx context.Context, municipio *Municipio) error
	Atualizar(ctx context.Context, municipio *Municipio) error
	CodigoExistente(ctx context.Context, codigo int) (bool, error)
}
