package http

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

// Limitador controla a taxa de requisições por cliente, mantendo um
// rate.Limiter por IP de origem.
type Limitador struct {
	mu       sync.Mutex
	clientes map[string]*clienteLimitado
	taxa     rate.Limit
	rajada   int
}

type clienteLimitado struct {
	limiter   *rate.Limiter
	ultimoUso time.Time
}

// NewLimitador cria um limitador com a taxa sustentada (requisições por
// segundo) e a rajada máxima informadas.
func NewLimitador(porSegundo float64, rajada int) *Limitador {
	l := &Limitador{
		clientes: make(map[string]*clienteLimitado),
		taxa:     rate.Limit(porSegundo),
		rajada:   rajada,
	}

	go l.limpezaPeriodica()

	return l
}

func (l *Limitador) permitir(ip string) bool {
	if ip == "" {
		ip = "desconhecido"
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	cliente, existe := l.clientes[ip]
	if !existe {
		cliente = &clienteLimitado{limiter: rate.NewLimiter(l.taxa, l.rajada)}
		l.clientes[ip] = cliente
	}
	cliente.ultimoUso = time.Now()

	return cliente.limiter.Allow()
}

// limpezaPeriodica remove clientes ociosos para o mapa não crescer sem limite.
func (l *Limitador) limpezaPeriodica() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		limite := time.Now().Add(-10 * time.Minute)

		l.mu.Lock()
		for ip, cliente := range l.clientes {
			if cliente.ultimoUso.Before(limite) {
				delete(l.clientes, ip)
			}
		}
		l.mu.Unlock()
	}
}

// Middleware responde 429 quando o cliente excede a taxa configurada.
func (l *Limitador) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !l.permitir(c.IP()) {
			return c.Status(fiber.StatusTooManyRequests).JSON(RespostaErro{
				Status:   fiber.StatusTooManyRequests,
				Mensagem: "limite de requisições excedido, tente novamente em instantes",
			})
		}
		return c.Next()
	}
}
