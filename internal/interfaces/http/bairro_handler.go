package http

import (
	"github.com/HectorBonilhaa/cadastro_backend/internal/application"
	"github.com/HectorBonilhaa/cadastro_backend/internal/domain"
	"github.com/gofiber/fiber/v2"
)

type BairroHandler struct {
	service *application.BairroService
}

// BairroRequest representa o payload de criação/alteração de bairro
type BairroRequest struct {
	CodigoBairro    int    `json:"codigoBairro"`
	CodigoMunicipio int    `json:"codigoMunicipio" validate:"required"`
	Nome            string `json:"nome" validate:"required"`
	Status          int    `json:"status" validate:"required"`
}

// NewBairroHandler cria uma nova instância do handler de bairros
func NewBairroHandler(service *application.BairroService) *BairroHandler {
	return &BairroHandler{
		service: service,
	}
}

// Consultar atende GET /bairro com os filtros codigoBairro, codigoMunicipio,
// nome e status
func (h *BairroHandler) Consultar(c *fiber.Ctx) error {
	codigoBairro, err := inteiroDeConsulta(c, "codigoBairro")
	if err != nil {
		return responderErro(c, err, "")
	}
	codigoMunicipio, err := inteiroDeConsulta(c, "codigoMunicipio")
	if err != nil {
		return responderErro(c, err, "")
	}
	status, err := inteiroDeConsulta(c, "status")
	if err != nil {
		return responderErro(c, err, "")
	}

	filtro := domain.BairroFiltro{
		CodigoBairro:    codigoBairro,
		CodigoMunicipio: codigoMunicipio,
		Nome:            c.Query("nome"),
		Status:          status,
	}

	bairros, err := h.service.Buscar(c.Context(), filtro)
	if err != nil {
		return responderErro(c, err, "não foi possível consultar a tabela de bairros no banco de dados")
	}

	if filtro.Unico() {
		if len(bairros) == 0 {
			return responderErro(c, domain.NovoErroNaoEncontrado("não existe um bairro com o código: %d", *filtro.CodigoBairro), "")
		}
		return c.JSON(bairros[0])
	}
	return c.JSON(bairros)
}

// Criar atende POST /bairro e devolve a lista atualizada
func (h *BairroHandler) Criar(c *fiber.Ctx) error {
	var req BairroRequest
	if err := c.BodyParser(&req); err != nil {
		return responderErro(c, erroCorpoInvalido(), "")
	}
	if err := validarCorpo(&req); err != nil {
		return responderErro(c, err, "")
	}

	bairro := domain.Bairro{
		CodigoMunicipio: req.CodigoMunicipio,
		Nome:            req.Nome,
		Status:          req.Status,
	}

	if err := h.service.Criar(c.Context(), &bairro); err != nil {
		return responderErro(c, err, "não foi possível incluir o bairro no banco de dados")
	}

	return h.responderLista(c)
}

// Atualizar atende PUT /bairro e devolve a lista atualizada
func (h *BairroHandler) Atualizar(c *fiber.Ctx) error {
	var req BairroRequest
	if err := c.BodyParser(&req); err != nil {
		return responderErro(c, erroCorpoInvalido(), "")
	}
	if err := validarCorpo(&req); err != nil {
		return responderErro(c, err, "")
	}

	bairro := domain.Bairro{
		CodigoBairro:    req.CodigoBairro,
		CodigoMunicipio: req.CodigoMunicipio,
		Nome:            req.Nome,
		Status:          req.Status,
	}

	if err := h.service.Atualizar(c.Context(), &bairro); err != nil {
		return responderErro(c, err, "não foi possível alterar o bairro no banco de dados")
	}

	return h.responderLista(c)
}

func (h *BairroHandler) responderLista(c *fiber.Ctx) error {
	bairros, err := h.service.Buscar(c.Context(), domain.BairroFiltro{})
	if err != nil {
		return responderErro(c, err, "não foi possível consultar a tabela de bairros no banco de dados")
	}
	return c.JSON(bairros)
}
