package domain

import "context"

// Endereco representa um endereço de uma pessoa. Na consulta de pessoa por
// código, Bairro e Municipio carregam a hierarquia desnormalizada
// bairro → município → UF.
type Endereco struct {
	CodigoEndereco int    `json:"codigoEndereco"`
	CodigoPessoa   int    `json:"codigoPessoa"`
	CodigoBairro   int    `json:"codigoBairro"`
	NomeRua        string `json:"nomeRua"`
	Numero         string `json:"numero"`
	Complemento    string `json:"complemento"`
	Cep            string `json:"cep"`

	Bairro    *Bairro    `json:"bairro,omitempty"`
	Municipio *Municipio `json:"municipio,omitempty"`
}

// EnderecoFiltro carrega os parâmetros de consulta permitidos para a
// tabela de endereços.
type EnderecoFiltro struct {
	CodigoEndereco *int
	CodigoPessoa   *int
	CodigoBairro   *int
}

// Unico indica se o filtro identifica no máximo um registro.
func (f EnderecoFiltro) Unico() bool {
	return f.CodigoEndereco != nil
}

// EnderecoRepository define as operações com endereços avulsos
type EnderecoRepository interface {
	Buscar(ctx context.Context, filtro EnderecoFiltro) ([]Endereco, error)
	Criar(ctx context.Context, endereco *Endereco) error
	Atualizar(ctx context.Context, endereco *Endereco) error
	Excluir(ctx context.Context, codigo int) error
	CodigoExistente(ctx context.Context, codigo int) (bool, error)
}
