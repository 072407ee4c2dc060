package http

import (
	"github.com/HectorBonilhaa/cadastro_backend/internal/application"
	"github.com/HectorBonilhaa/cadastro_backend/internal/domain"
	"github.com/gofiber/fiber/v2"
)

type MunicipioHandler struct {
	service *application.MunicipioService
}

// MunicipioRequest representa o payload de criação/alteração de município
type MunicipioRequest struct {
	CodigoMunicipio int    `json:"codigoMunicipio"`
	CodigoUF        int    `json:"codigoUF" validate:"required"`
	Nome            string `json:"nome" validate:"required"`
	Status          int    `json:"status" validate:"required"`
}

// NewMunicipioHandler cria uma nova instância do handler de municípios
func NewMunicipioHandler(service *application.MunicipioService) *MunicipioHandler {
	return &MunicipioHandler{
		service: service,
	}
}

// Consultar atende GET /municipio com os filtros codigoMunicipio, codigoUF,
// nome e status
func (h *MunicipioHandler) Consultar(c *fiber.Ctx) error {
	codigoMunicipio, err := inteiroDeConsulta(c, "codigoMunicipio")
	if err != nil {
		return responderErro(c, err, "")
	}
	codigoUF, err := inteiroDeConsulta(c, "codigoUF")
	if err != nil {
		return responderErro(c, err, "")
	}
	status, err := inteiroDeConsulta(c, "status")
	if err != nil {
		return responderErro(c, err, "")
	}

	filtro := domain.MunicipioFiltro{
		CodigoMunicipio: codigoMunicipio,
		CodigoUF:        codigoUF,
		Nome:            c.Query("nome"),
		Status:          status,
	}

	municipios, err := h.service.Buscar(c.Context(), filtro)
	if err != nil {
		return responderErro(c, err, "não foi possível consultar a tabela de municípios no banco de dados")
	}

	if filtro.Unico() {
		if len(municipios) == 0 {
			return responderErro(c, domain.NovoErroNaoEncontrado("não existe um município com o código: %d", *filtro.CodigoMunicipio), "")
		}
		return c.JSON(municipios[0])
	}
	return c.JSON(municipios)
}

// Criar atende POST /municipio e devolve a lista atualizada
func (h *MunicipioHandler) Criar(c *fiber.Ctx) error {
	var req MunicipioRequest
	if err := c.BodyParser(&req); err != nil {
		return responderErro(c, erroCorpoInvalido(), "")
	}
	if err := validarCorpo(&req); err != nil {
		return responderErro(c, err, "")
	}

	municipio := domain.Municipio{
		CodigoUF: req.CodigoUF,
		Nome:     req.Nome,
		Status:   req.Status,
	}

	if err := h.service.Criar(c.Context(), &municipio); err != nil {
		return responderErro(c, err, "não foi possível incluir o município no banco de dados")
	}

	return h.responderLista(c)
}

// Atualizar atende PUT /municipio e devolve a lista atualizada
func (h *MunicipioHandler) Atualizar(c *fiber.Ctx) error {
	var req MunicipioRequest
	if err := c.BodyParser(&req); err != nil {
		return responderErro(c, erroCorpoInvalido(), "")
	}
	if err := validarCorpo(&req); err != nil {
		return responderErro(c, err, "")
	}

	municipio := domain.Municipio{
		CodigoMunicipio: req.CodigoMunicipio,
		CodigoUF:        req.CodigoUF,
		Nome:            req.Nome,
		Status:          req.Status,
	}

	if err := h.service.Atualizar(c.Context(), &municipio); err != nil {
		return responderErro(c, err, "não foi possível alterar o município no banco de dados")
	}

	return h.responderLista(c)
}

func (h *MunicipioHandler) responderLista(c *fiber.Ctx) error {
	municipios, err := h.service.Buscar(c.Context(), domain.MunicipioFiltro{})
	if err != nil {
		return responderErro(c, err, "não foi possível consultar a tabela de municípios no banco de dados")
	}
	return c.JSON(municipios)
}
