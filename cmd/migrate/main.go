package main

import (
	"database/sql"
	"os"

	"github.com/HectorBonilhaa/cadastro_backend/internal/config"
	"github.com/HectorBonilhaa/cadastro_backend/internal/database/migrations"
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

	sqlBytes, err := migrations.Files.ReadFile("cadastro_schema.sql")
	if err != nil {
		log.Fatal().Err(err).Msg("erro ao ler o arquivo SQL embutido")
	}

	if _, err := db.Exec(string(sqlBytes)); err != nil {
		log.Fatal().Err(err).Msg("erro ao executar a migration")
	}

	rows, err := db.Query(`
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = 'public' AND table_name LIKE 'tb_%'
		ORDER BY table_name
	`)
	if err != nil {
		log.Fatal().Err(err).Msg("erro ao verificar as tabelas criadas")
	}
	defer rows.Close()

	for rows.Next() {
		var tabela string
		if err := rows.Scan(&tabela); err != nil {
			log.Error().Err(err).Msg("erro ao escanear tabela")
			continue
		}
		log.Info().Str("tabela", tabela).Msg("tabela disponível")
	}

	log.Info().Msg("migration concluída")
}
