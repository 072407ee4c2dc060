package main

import (
	"database/sql"
	"os"

	"github.com/HectorBonilhaa/cadastro_backend/internal/application"
	"github.com/HectorBonilhaa/cadastro_backend/internal/config"
	"github.com/HectorBonilhaa/cadastro_backend/internal/infrastructure/repository"
	handlers "github.com/HectorBonilhaa/cadastro_backend/internal/interfaces/http"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("erro ao carregar configuração")
	}

	db, err := sql.Open("postgres", cfg.GetDBConnString())
	if err != nil {
		log.Fatal().Err(err).Msg("erro ao conectar no banco de dados")
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("erro ao pingar o banco de dados")
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(handlers.RequestID())
	app.Use(handlers.Logger())

	limitador := handlers.NewLimitador(cfg.LimitePorSegundo, cfg.LimiteRajada)
	app.Use(limitador.Middleware())

	// UFs
	ufRepo := repository.NewUFRepository(db)
	ufService := application.NewUFService(ufRepo)
	ufHandler := handlers.NewUFHandler(ufService)

	// Municípios
	municipioRepo := repository.NewMunicipioRepository(db)
	municipioService := application.NewMunicipioService(municipioRepo, ufRepo)
	municipioHandler := handlers.NewMunicipioHandler(municipioService)

	// Bairros
	bairroRepo := repository.NewBairroRepository(db)
	bairroService := application.NewBairroService(bairroRepo, municipioRepo)
	bairroHandler := handlers.NewBairroHandler(bairroService)

	// Pessoas
	pessoaRepo := repository.NewPessoaRepository(db)
	pessoaService := application.NewPessoaService(pessoaRepo)
	pessoaHandler := handlers.NewPessoaHandler(pessoaService)

	// Endereços
	enderecoRepo := repository.NewEnderecoRepository(db)
	enderecoService := application.NewEnderecoService(enderecoRepo, pessoaRepo, bairroRepo)
	enderecoHandler := handlers.NewEnderecoHandler(enderecoService)

	uf := app.Group("/uf")
	uf.Get("/", ufHandler.Consultar)
	uf.Post("/", ufHandler.Criar)
	uf.Put("/", ufHandler.Atualizar)
	uf.Delete("/:codigoUF", ufHandler.Excluir)

	municipio := app.Group("/municipio")
	municipio.Get("/", municipioHandler.Consultar)
	municipio.Post("/", municipioHandler.Criar)
	municipio.Put("/", municipioHandler.Atualizar)

	bairro := app.Group("/bairro")
	bairro.Get("/", bairroHandler.Consultar)
	bairro.Post("/", bairroHandler.Criar)
	bairro.Put("/", bairroHandler.Atualizar)

	pessoa := app.Group("/pessoa")
	pessoa.Get("/", pessoaHandler.Consultar)
	pessoa.Post("/", pessoaHandler.Criar)
	pessoa.Put("/", pessoaHandler.Atualizar)
	pessoa.Delete("/", pessoaHandler.Excluir)

	endereco := app.Group("/endereco")
	endereco.Get("/", enderecoHandler.Consultar)
	endereco.Post("/", enderecoHandler.Criar)
	endereco.Put("/", enderecoHandler.Atualizar)
	endereco.Delete("/", enderecoHandler.Excluir)

	log.Info().Str("porta", cfg.ServerPort).Msg("servidor iniciando")
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		log.Fatal().Err(err).Msg("erro ao iniciar o servidor")
	}
}
