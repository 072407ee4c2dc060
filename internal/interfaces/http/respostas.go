package http

import (
	"errors"
	"strconv"
	"strings"

	"github.com/HectorBonilhaa/cadastro_backend/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// RespostaErro é o corpo padrão de erro; o status HTTP se repete no corpo
type RespostaErro struct {
	Status   int    `json:"status"`
	Mensagem string `json:"mensagem"`
}

var validar = validator.New()

// responderErro converte o erro de domínio no par status/corpo. Falhas de
// persistência são registradas no log com o detalhe original e o cliente
// recebe apenas a mensagem curada da operação.
func responderErro(c *fiber.Ctx, err error, mensagemPersistencia string) error {
	status := fiber.StatusBadRequest
	mensagem := err.Error()

	var naoEncontrado *domain.ErroNaoEncontrado
	var persistencia *domain.ErroPersistencia
	switch {
	case errors.As(err, &naoEncontrado):
		status = fiber.StatusNotFound
	case errors.As(err, &persistencia):
		log.Error().
			Err(persistencia.Err).
			Str("operacao", persistencia.Operacao).
			Str("rota", c.Path()).
			Msg("falha de persistência")
		if mensagemPersistencia == "" {
			mensagemPersistencia = "não foi possível concluir a operação no banco de dados"
		}
		mensagem = mensagemPersistencia
	default:
		log.Warn().Err(err).Str("rota", c.Path()).Msg("requisição rejeitada")
	}

	return c.Status(status).JSON(RespostaErro{Status: status, Mensagem: mensagem})
}

// erroCorpoInvalido padroniza a rejeição de corpos que não puderam ser
// desserializados (inclui campos numéricos recebidos como texto).
func erroCorpoInvalido() error {
	return domain.NovoErroValidacao("não foi possível processar o corpo da requisição, verifique os tipos dos campos informados")
}

// validarCorpo aplica as tags de validação do DTO e converte o resultado em
// uma mensagem única com os campos rejeitados.
func validarCorpo(corpo any) error {
	err := validar.Struct(corpo)
	if err == nil {
		return nil
	}

	var errosValidacao validator.ValidationErrors
	if errors.As(err, &errosValidacao) {
		campos := make([]string, 0, len(errosValidacao))
		for _, e := range errosValidacao {
			campos = append(campos, e.Field())
		}
		return domain.NovoErroValidacao("campos obrigatórios ausentes ou inválidos: %s", strings.Join(campos, ", "))
	}
	return domain.NovoErroValidacao("corpo da requisição inválido")
}

// inteiroDeConsulta converte um parâmetro de query em inteiro; ausência
// retorna nil e valor não numérico vira ErroValidacao no padrão das
// mensagens de consulta.
func inteiroDeConsulta(c *fiber.Ctx, nome string) (*int, error) {
	bruto := c.Query(nome)
	if bruto == "" {
		return nil, nil
	}
	valor, err := strconv.Atoi(bruto)
	if err != nil {
		return nil, domain.NovoErroValidacao("não foi possível realizar a consulta, pois o campo %s aceita apenas números e você pesquisou por: %s", nome, bruto)
	}
	return &valor, nil
}
