package http

import (
	"github.com/HectorBonilhaa/cadastro_backend/internal/application"
	"github.com/HectorBonilhaa/cadastro_backend/internal/domain"
	"github.com/gofiber/fiber/v2"
)

type UFHandler struct {
	service *application.UFService
}

// UFRequest representa o payload de criação/alteração de UF
type UFRequest struct {
	CodigoUF int    `json:"codigoUF"`
	Sigla    string `json:"sigla" validate:"required"`
	Nome     string `json:"nome" validate:"required"`
	Status   int    `json:"status" validate:"required"`
}

// NewUFHandler cria uma nova instância do handler de UFs
func NewUFHandler(service *application.UFService) *UFHandler {
	return &UFHandler{
		service: service,
	}
}

// Consultar atende GET /uf com os filtros codigoUF, sigla, nome e status.
// Filtros de chave ou coluna única respondem um objeto; os demais, a lista
// ordenada por código decrescente.
func (h *UFHandler) Consultar(c *fiber.Ctx) error {
	codigoUF, err := inteiroDeConsulta(c, "codigoUF")
	if err != nil {
		return responderErro(c, err, "")
	}
	status, err := inteiroDeConsulta(c, "status")
	if err != nil {
		return responderErro(c, err, "")
	}

	filtro := domain.UFFiltro{
		CodigoUF: codigoUF,
		Sigla:    c.Query("sigla"),
		Nome:     c.Query("nome"),
		Status:   status,
	}

	ufs, err := h.service.Buscar(c.Context(), filtro)
	if err != nil {
		return responderErro(c, err, "não foi possível consultar a tabela de UF no banco de dados")
	}

	if filtro.Unico() {
		if len(ufs) == 0 {
			return responderErro(c, domain.NovoErroNaoEncontrado("não foi encontrada uma UF para o filtro informado"), "")
		}
		return c.JSON(ufs[0])
	}
	return c.JSON(ufs)
}

// Criar atende POST /uf e devolve a lista atualizada de UFs
func (h *UFHandler) Criar(c *fiber.Ctx) error {
	var req UFRequest
	if err := c.BodyParser(&req); err != nil {
		return responderErro(c, erroCorpoInvalido(), "")
	}
	if err := validarCorpo(&req); err != nil {
		return responderErro(c, err, "")
	}

	uf := domain.UF{
		Sigla:  req.Sigla,
		Nome:   req.Nome,
		Status: req.Status,
	}

	if err := h.service.Criar(c.Context(), &uf); err != nil {
		return responderErro(c, err, "não foi possível incluir a UF no banco de dados")
	}

	return h.responderLista(c)
}

// Atualizar atende PUT /uf e devolve a lista atualizada de UFs
func (h *UFHandler) Atualizar(c *fiber.Ctx) error {
	var req UFRequest
	if err := c.BodyParser(&req); err != nil {
		return responderErro(c, erroCorpoInvalido(), "")
	}
	if err := validarCorpo(&req); err != nil {
		return responderErro(c, err, "")
	}

	uf := domain.UF{
		CodigoUF: req.CodigoUF,
		Sigla:    req.Sigla,
		Nome:     req.Nome,
		Status:   req.Status,
	}

	if err := h.service.Atualizar(c.Context(), &uf); err != nil {
		return responderErro(c, err, "não foi possível alterar a UF no banco de dados")
	}

	return h.responderLista(c)
}

// Excluir atende DELETE /uf/:codigoUF; código inexistente responde 404
func (h *UFHandler) Excluir(c *fiber.Ctx) error {
	codigo, err := c.ParamsInt("codigoUF")
	if err != nil {
		return responderErro(c, domain.NovoErroValidacao("não foi possível excluir a UF, pois o código UF aceita apenas números e você informou: %s", c.Params("codigoUF")), "")
	}

	if err := h.service.Excluir(c.Context(), codigo); err != nil {
		return responderErro(c, err, "não foi possível excluir a UF no banco de dados")
	}

	return h.responderLista(c)
}

// responderLista refaz a consulta da coleção; toda mutação bem-sucedida
// responde o estado atual da tabela, nunca o payload recebido.
func (h *UFHandler) responderLista(c *fiber.Ctx) error {
	ufs, err := h.service.Buscar(c.Context(), domain.UFFiltro{})
	if err != nil {
		return responderErro(c, err, "não foi possível consultar a tabela de UF no banco de dados")
	}
	return c.JSON(ufs)
}
