package domain

import "context"

// UF representa uma unidade federativa
type UF struct {
	CodigoUF int    `json:"codigoUF"`
	Sigla    string `json:"sigla"`
	Nome     string `json:"nome"`
	Status   int    `json:"status"`
}

// UFFiltro carrega os parâmetros de consulta permitidos para a tabela de UF.
// Campos numéricos usam ponteiro para distinguir ausência de zero.
type UFFiltro struct {
	CodigoUF *int
	Sigla    string
	Nome     string
	Status   *int
}

// Unico indica se o filtro identifica no máximo um registro (consulta por
// chave ou por coluna única).
func (f UFFiltro) Unico() bool {
	return f.CodigoUF != nil || f.Sigla != "" || f.Nome != ""
}

// UFRepository define as operações com unidades federativas
type UFRepository interface {
	// Buscar retorna as UFs que atendem ao filtro, ordenadas por código decrescente
	Buscar(ctx context.Context, filtro UFFiltro) ([]UF, error)
	// Criar insere uma nova UF atribuindo o código pela sequence
	Criar(ctx context.Context, uf *UF) error
	// Atualizar substitui todos os campos não-chave da UF
	Atualizar(ctx context.Context, uf *UF) error
	// Excluir remove a UF pelo código
	Excluir(ctx context.Context, codigo int) error
	// CodigoExistente verifica se existe uma UF com o código informado
	CodigoExistente(ctx context.Context, codigo int) (bool, error)
	// SiglaExistente verifica se a sigla já está cadastrada, ignorando caixa.
	// excluirCodigo diferente de zero desconsidera o próprio registro em atualização.
	SiglaExistente(ctx context.Context, sigla string, excluirCodigo int) (bool, error)
	// NomeExistente verifica se o nome já está cadastrado, ignorando caixa
	NomeExistente(ctx context.Context, nome string, excluirCodigo int) (bool, error)
}
