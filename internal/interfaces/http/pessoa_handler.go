package http

import (
	"github.com/HectorBonilhaa/cadastro_backend/internal/application"
	"github.com/HectorBonilhaa/cadastro_backend/internal/domain"
	"github.com/gofiber/fiber/v2"
)

type PessoaHandler struct {
	service *application.PessoaService
}

// EnderecoPessoaRequest representa um endereço dentro do agregado de pessoa.
// CodigoEndereco presente indica alteração no lugar; ausente indica inserção.
type EnderecoPessoaRequest struct {
	CodigoEndereco int    `json:"codigoEndereco"`
	CodigoBairro   int    `json:"codigoBairro" validate:"required"`
	NomeRua        string `json:"nomeRua" validate:"required"`
	Numero         string `json:"numero" validate:"required"`
	Complemento    string `json:"complemento"`
	Cep            string `json:"cep" validate:"required"`
}

// PessoaRequest representa o payload de criação/alteração de pessoa com a
// lista de endereços desejada
type PessoaRequest struct {
	CodigoPessoa int                     `json:"codigoPessoa"`
	Nome         string                  `json:"nome" validate:"required"`
	Sobrenome    string                  `json:"sobrenome" validate:"required"`
	Idade        int                     `json:"idade" validate:"required"`
	Login        string                  `json:"login" validate:"required"`
	Senha        string                  `json:"senha" validate:"required"`
	Status       int                     `json:"status" validate:"required"`
	Enderecos    []EnderecoPessoaRequest `json:"enderecos" validate:"dive"`
}

// ExcluirPessoaRequest identifica a pessoa a remover
type ExcluirPessoaRequest struct {
	CodigoPessoa int `json:"codigoPessoa" validate:"required"`
}

// NewPessoaHandler cria uma nova instância do handler de pessoas
func NewPessoaHandler(service *application.PessoaService) *PessoaHandler {
	return &PessoaHandler{
		service: service,
	}
}

// Consultar atende GET /pessoa. Com codigoPessoa na query responde a pessoa
// com a hierarquia completa de endereços; sem ele, a listagem filtrada por
// nome, sobrenome, idade, login, senha e status, sem endereços.
func (h *PessoaHandler) Consultar(c *fiber.Ctx) error {
	codigoPessoa, err := inteiroDeConsulta(c, "codigoPessoa")
	if err != nil {
		return responderErro(c, err, "")
	}

	if codigoPessoa != nil {
		pessoa, err := h.service.BuscarPorCodigo(c.Context(), *codigoPessoa)
		if err != nil {
			return responderErro(c, err, "não foi possível consultar a tabela de pessoas no banco de dados")
		}
		return c.JSON(pessoa)
	}

	idade, err := inteiroDeConsulta(c, "idade")
	if err != nil {
		return responderErro(c, err, "")
	}
	status, err := inteiroDeConsulta(c, "status")
	if err != nil {
		return responderErro(c, err, "")
	}

	filtro := domain.PessoaFiltro{
		Nome:      c.Query("nome"),
		Sobrenome: c.Query("sobrenome"),
		Idade:     idade,
		Login:     c.Query("login"),
		Senha:     c.Query("senha"),
		Status:    status,
	}

	pessoas, err := h.service.Buscar(c.Context(), filtro)
	if err != nil {
		return responderErro(c, err, "não foi possível consultar a tabela de pessoas no banco de dados")
	}
	return c.JSON(pessoas)
}

// Criar atende POST /pessoa: insere a pessoa e os endereços em uma única
// transação e devolve a lista atualizada de pessoas
func (h *PessoaHandler) Criar(c *fiber.Ctx) error {
	var req PessoaRequest
	if err := c.BodyParser(&req); err != nil {
		return responderErro(c, erroCorpoInvalido(), "")
	}
	if err := validarCorpo(&req); err != nil {
		return responderErro(c, err, "")
	}

	pessoa := paraPessoa(req)

	if err := h.service.Criar(c.Context(), &pessoa); err != nil {
		return responderErro(c, err, "não foi possível incluir a pessoa no banco de dados")
	}

	return h.responderLista(c)
}

// Atualizar atende PUT /pessoa: a lista de endereços do corpo é o estado
// final desejado; o serviço reconcilia com o persistido e aplica o plano em
// uma única transação. Devolve a lista atualizada de pessoas.
func (h *PessoaHandler) Atualizar(c *fiber.Ctx) error {
	var req PessoaRequest
	if err := c.BodyParser(&req); err != nil {
		return responderErro(c, erroCorpoInvalido(), "")
	}
	if err := validarCorpo(&req); err != nil {
		return responderErro(c, err, "")
	}

	pessoa := paraPessoa(req)
	pessoa.CodigoPessoa = req.CodigoPessoa

	if err := h.service.Atualizar(c.Context(), &pessoa); err != nil {
		return responderErro(c, err, "não foi possível alterar a pessoa no banco de dados")
	}

	return h.responderLista(c)
}

// Excluir atende DELETE /pessoa: remove a pessoa e os endereços em cascata
// e devolve a lista atualizada
func (h *PessoaHandler) Excluir(c *fiber.Ctx) error {
	var req ExcluirPessoaRequest
	if err := c.BodyParser(&req); err != nil {
		return responderErro(c, erroCorpoInvalido(), "")
	}
	if err := validarCorpo(&req); err != nil {
		return responderErro(c, err, "")
	}

	if err := h.service.Excluir(c.Context(), req.CodigoPessoa); err != nil {
		return responderErro(c, err, "não foi possível excluir a pessoa no banco de dados")
	}

	return h.responderLista(c)
}

func (h *PessoaHandler) responderLista(c *fiber.Ctx) error {
	pessoas, err := h.service.Buscar(c.Context(), domain.PessoaFiltro{})
	if err != nil {
		return responderErro(c, err, "não foi possível consultar a tabela de pessoas no banco de dados")
	}
	return c.JSON(pessoas)
}

// paraPessoa converte o DTO da requisição no agregado de domínio
func paraPessoa(req PessoaRequest) domain.Pessoa {
	enderecos := make([]domain.Endereco, 0, len(req.Enderecos))
	for _, e := range req.Enderecos {
		enderecos = append(enderecos, domain.Endereco{
			CodigoEndereco: e.CodigoEndereco,
			CodigoBairro:   e.CodigoBairro,
			NomeRua:        e.NomeRua,
			Numero:         e.Numero,
			Complemento:    e.Complemento,
			Cep:            e.Cep,
		})
	}

	return domain.Pessoa{
		Nome:      req.Nome,
		Sobrenome: req.Sobrenome,
		Idade:     req.Idade,
		Login:     req.Login,
		Senha:     req.Senha,
		Status:    req.Status,
		Enderecos: enderecos,
	}
}
