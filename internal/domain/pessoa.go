package domain

import "context"

// Pessoa representa o agregado de pessoa com sua coleção de endereços
type Pessoa struct {
	CodigoPessoa int        `json:"codigoPessoa"`
	Nome         string     `json:"nome"`
	Sobrenome    string     `json:"sobrenome"`
	Idade        int        `json:"idade"`
	Login        string     `json:"login"`
	Senha        string     `json:"senha"`
	Status       int        `json:"status"`
	Enderecos    []Endereco `json:"enderecos"`
}

// PessoaFiltro carrega os parâmetros de consulta permitidos para a listagem
// de pessoas.
type PessoaFiltro struct {
	Nome      string
	Sobrenome string
	Idade     *int
	Login     string
	Senha     string
	Status    *int
}

// PlanoEnderecos é o resultado da reconciliação entre os endereços
// persistidos e a lista desejada enviada na atualização: códigos a excluir,
// endereços a atualizar no lugar e endereços novos a inserir.
type PlanoEnderecos struct {
	Excluir   []int
	Atualizar []Endereco
	Inserir   []Endereco
}

// Vazio informa se o plano não tem nenhuma operação pendente.
func (p PlanoEnderecos) Vazio() bool {
	return len(p.Excluir) == 0 && len(p.Atualizar) == 0 && len(p.Inserir) == 0
}

// PessoaRepository define as operações com o agregado de pessoa
type PessoaRepository interface {
	// Buscar retorna as pessoas que atendem ao filtro, sem endereços,
	// ordenadas por código decrescente
	Buscar(ctx context.Context, filtro PessoaFiltro) ([]Pessoa, error)
	// BuscarPorCodigo retorna a pessoa com seus endereços e a hierarquia
	// bairro → município → UF de cada um. Retorna nil quando não existe.
	BuscarPorCodigo(ctx context.Context, codigo int) (*Pessoa, error)
	// BuscarEnderecos retorna os endereços persistidos da pessoa, sem a
	// hierarquia, na ordem de inserção
	BuscarEnderecos(ctx context.Context, codigoPessoa int) ([]Endereco, error)
	// Criar insere a pessoa e todos os endereços informados em uma única
	// transação
	Criar(ctx context.Context, pessoa *Pessoa) error
	// Atualizar substitui os campos da pessoa e executa o plano de
	// reconciliação de endereços em uma única transação
	Atualizar(ctx context.Context, pessoa *Pessoa, plano PlanoEnderecos) error
	// Excluir remove a pessoa e, em cascata, seus endereços
	Excluir(ctx context.Context, codigo int) error
	// CodigoExistente verifica se existe uma pessoa com o código informado
	CodigoExistente(ctx context.Context, codigo int) (bool, error)
	// LoginExistente verifica se o login já está cadastrado, ignorando caixa.
	// excluirCodigo diferente de zero desconsidera o próprio registro.
	LoginExistente(ctx context.Context, login string, excluirCodigo int) (bool, error)
}
