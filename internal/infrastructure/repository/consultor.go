package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/HectorBonilhaa/cadastro_backend/internal/domain"
	"github.com/lib/pq"
)

// consultor é a consulta de linha única comum a *sql.DB e *sql.Tx, para que
// os validadores de existência e a geração de sequence rodem dentro ou fora
// de uma transação.
type consultor interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// proximaSequence obtém o próximo valor da sequence informada, usado como
// chave primária nas inserções.
func proximaSequence(ctx context.Context, q consultor, nome string) (int, error) {
	var codigo int
	if err := q.QueryRowContext(ctx, `SELECT nextval($1)`, nome).Scan(&codigo); err != nil {
		return 0, domain.NovoErroPersistencia("gerar sequence "+nome, err)
	}
	return codigo, nil
}

// conflitoUnicidade identifica violação de índice único do Postgres
// (unique_violation, código 23505).
func conflitoUnicidade(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// paraNullString converte string vazia em NULL na gravação.
func paraNullString(valor string) sql.NullString {
	if valor == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: valor, Valid: true}
}
