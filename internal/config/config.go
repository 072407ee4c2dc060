package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	ServerPort  string
	CORSOrigins string

	// Limite de requisições por IP
	LimitePorSegundo float64
	LimiteRajada     int
}

// LoadConfig carrega as variáveis de ambiente, lendo um .env em
// desenvolvimento quando presente.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     valorOuPadrao("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSSLMode:  valorOuPadrao("DB_SSLMODE", "disable"),

		ServerPort:  valorOuPadrao("SERVER_PORT", "8080"),
		CORSOrigins: valorOuPadrao("CORS_ORIGINS", "http://localhost:3000"),

		LimitePorSegundo: valorFloatOuPadrao("RATE_LIMIT_POR_SEGUNDO", 20),
		LimiteRajada:     valorIntOuPadrao("RATE_LIMIT_RAJADA", 40),
	}

	if cfg.DBHost == "" || cfg.DBUser == "" || cfg.DBName == "" {
		return nil, fmt.Errorf("variáveis de ambiente do banco não configuradas (DB_HOST, DB_USER, DB_NAME)")
	}

	return cfg, nil
}

// GetDBConnString monta a string de conexão do Postgres
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

func valorOuPadrao(nome, padrao string) string {
	if valor := os.Getenv(nome); valor != "" {
		return valor
	}
	return padrao
}

func valorIntOuPadrao(nome string, padrao int) int {
	valor, err := strconv.Atoi(os.Getenv(nome))
	if err != nil {
		return padrao
	}
	return valor
}

func valorFloatOuPadrao(nome string, padrao float64) float64 {
	valor, err := strconv.ParseFloat(os.Getenv(nome), 64)
	if err != nil {
		return padrao
	}
	return valor
}
