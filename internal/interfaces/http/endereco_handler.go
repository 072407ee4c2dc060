package http

import (
	"github.com/HectorBonilhaa/cadastro_backend/internal/application"
	"github.com/HectorBonilhaa/cadastro_backend/internal/domain"
	"github.com/gofiber/fiber/v2"
)

type EnderecoHandler struct {
	service *application.EnderecoService
}

// EnderecoRequest representa o payload de criação/alteração de endereço avulso
type EnderecoRequest struct {
	CodigoEndereco int    `json:"codigoEndereco"`
	CodigoPessoa   int    `json:"codigoPessoa" validate:"required"`
	CodigoBairro   int    `json:"codigoBairro" validate:"required"`
	NomeRua        string `json:"nomeRua" validate:"required"`
	Numero         string `json:"numero" validate:"required"`
	Complemento    string `json:"complemento"`
	Cep            string `json:"cep" validate:"required"`
}

// ExcluirEnderecoRequest identifica o endereço a remover
type ExcluirEnderecoRequest struct {
	CodigoEndereco int `json:"codigoEndereco" validate:"required"`
}

// NewEnderecoHandler cria uma nova instância do handler de endereços
func NewEnderecoHandler(service *application.EnderecoService) *EnderecoHandler {
	return &EnderecoHandler{
		service: service,
	}
}

// Consultar atende GET /endereco com os filtros codigoEndereco, codigoPessoa
// e codigoBairro
func (h *EnderecoHandler) Consultar(c *fiber.Ctx) error {
	codigoEndereco, err := inteiroDeConsulta(c, "codigoEndereco")
	if err != nil {
		return responderErro(c, err, "")
	}
	codigoPessoa, err := inteiroDeConsulta(c, "codigoPessoa")
	if err != nil {
		return responderErro(c, err, "")
	}
	codigoBairro, err := inteiroDeConsulta(c, "codigoBairro")
	if err != nil {
		return responderErro(c, err, "")
	}

	filtro := domain.EnderecoFiltro{
		CodigoEndereco: codigoEndereco,
		CodigoPessoa:   codigoPessoa,
		CodigoBairro:   codigoBairro,
	}

	enderecos, err := h.service.Buscar(c.Context(), filtro)
	if err != nil {
		return responderErro(c, err, "não foi possível consultar a tabela de endereços no banco de dados")
	}

	if filtro.Unico() {
		if len(enderecos) == 0 {
			return responderErro(c, domain.NovoErroNaoEncontrado("não existe um endereço com o código: %d", *filtro.CodigoEndereco), "")
		}
		return c.JSON(enderecos[0])
	}
	return c.JSON(enderecos)
}

// Criar atende POST /endereco e devolve a lista atualizada
func (h *EnderecoHandler) Criar(c *fiber.Ctx) error {
	var req EnderecoRequest
	if err := c.BodyParser(&req); err != nil {
		return responderErro(c, erroCorpoInvalido(), "")
	}
	if err := validarCorpo(&req); err != nil {
		return responderErro(c, err, "")
	}

	endereco := domain.Endereco{
		CodigoPessoa: req.CodigoPessoa,
		CodigoBairro: req.CodigoBairro,
		NomeRua:      req.NomeRua,
		Numero:       req.Numero,
		Complemento:  req.Complemento,
		Cep:          req.Cep,
	}

	if err := h.service.Criar(c.Context(), &endereco); err != nil {
		return responderErro(c, err, "não foi possível incluir o endereço no banco de dados")
	}

	return h.responderLista(c)
}

// Atualizar atende PUT /endereco e devolve a lista atualizada
func (h *EnderecoHandler) Atualizar(c *fiber.Ctx) error {
	var req EnderecoRequest
	if err := c.BodyParser(&req); err != nil {
		return responderErro(c, erroCorpoInvalido(), "")
	}
	if err := validarCorpo(&req); err != nil {
		return responderErro(c, err, "")
	}

	endereco := domain.Endereco{
		CodigoEndereco: req.CodigoEndereco,
		CodigoPessoa:   req.CodigoPessoa,
		CodigoBairro:   req.CodigoBairro,
		NomeRua:        req.NomeRua,
		Numero:         req.Numero,
		Complemento:    req.Complemento,
		Cep:            req.Cep,
	}

	if err := h.service.Atualizar(c.Context(), &endereco); err != nil {
		return responderErro(c, err, "não foi possível alterar o endereço no banco de dados")
	}

	return h.responderLista(c)
}

// Excluir atende DELETE /endereco e devolve a lista atualizada
func (h *EnderecoHandler) Excluir(c *fiber.Ctx) error {
	var req ExcluirEnderecoRequest
	if err := c.BodyParser(&req); err != nil {
		return responderErro(c, erroCorpoInvalido(), "")
	}
	if err := validarCorpo(&req); err != nil {
		return responderErro(c, err, "")
	}

	if err := h.service.Excluir(c.Context(), req.CodigoEndereco); err != nil {
		return responderErro(c, err, "não foi possível excluir o endereço no banco de dados")
	}

	return h.responderLista(c)
}

func (h *EnderecoHandler) responderLista(c *fiber.Ctx) error {
	enderecos, err := h.service.Buscar(c.Context(), domain.EnderecoFiltro{})
	if err != nil {
		return responderErro(c, err, "não foi possível consultar a tabela de endereços no banco de dados")
	}
	return c.JSON(enderecos)
}
