package repository

import (
	"context"
	"database/sql"

	"github.com/HectorBonilhaa/cadastro_backend/internal/domain"
)

type bairroRepository struct {
	db *sql.DB
}

// NewBairroRepository cria uma nova instância do repositório de bairros
func NewBairroRepository(db *sql.DB) domain.BairroRepository {
	return &bairroRepository{db: db}
}

func (r *bairroRepository) Buscar(ctx context.Context, f domain.BairroFiltro) ([]domain.Bairro, error) {
	var filtro filtro
	if f.CodigoBairro != nil {
		filtro.Igual("codigo_bairro", *f.CodigoBairro)
	}
	if f.CodigoMunicipio != nil {
		filtro.Igual("codigo_municipio", *f.CodigoMunicipio)
	}
	if f.Nome != "" {
		filtro.IgualSemCaixa("nome", f.Nome)
	}
	if f.Status != nil {
		filtro.Igual("status", *f.Status)
	}

	query := `
		SELECT codigo_bairro, codigo_municipio, nome, status
		FROM tb_bairro` + filtro.Where() + `
		ORDER BY codigo_bairro DESC
	`

	rows, err := r.db.QueryContext(ctx, query, filtro.Args()...)
	if err != nil {
		return nil, domain.NovoErroPersistencia("consultar bairros", err)
	}
	defer rows.Close()

	bairros := []domain.Bairro{}
	for rows.Next() {
		var b domain.Bairro
		if err := rows.Scan(&b.CodigoBairro, &b.CodigoMunicipio, &b.Nome, &b.Status); err != nil {
			return nil, domain.NovoErroPersistencia("escanear bairro", err)
		}
		bairros = append(bairros, b)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NovoErroPersistencia("percorrer bairros", err)
	}

	return bairros, nil
}

func (r *bairroRepository) Criar(ctx context.Context, bairro *domain.Bairro) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.NovoErroPersistencia("iniciar transação", err)
	}
	defer tx.Rollback()

	codigo, err := proximaSequence(ctx, tx, "sequence_bairro")
	if err != nil {
		return err
	}
	bairro.CodigoBairro = codigo

	query := `
		INSERT INTO tb_bairro (codigo_bairro, codigo_municipio, nome, status)
		VALUES ($1, $2, $3, $4)
	`

	if _, err := tx.ExecContext(ctx, query,
		bairro.CodigoBairro, bairro.CodigoMunicipio, bairro.Nome, bairro.Status); err != nil {
		return domain.NovoErroPersistencia("inserir bairro", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.NovoErroPersistencia("confirmar transação", err)
	}
	return nil
}

func (r *bairroRepository) Atualizar(ctx context.Context, bairro *domain.Bairro) error {
	query := `
		UPDATE tb_bairro
		SET codigo_municipio = $1,
		    nome = $2,
		    status = $3
		WHERE codigo_bairro = $4
	`

	result, err := r.db.ExecContext(ctx, query,
		bairro.CodigoMunicipio, bairro.Nome, bairro.Status, bairro.CodigoBairro)
	if err != nil {
		return domain.NovoErroPersistencia("atualizar bairro", err)
	}

	linhas, err := result.RowsAffected()
	if err != nil {
		return domain.NovoErroPersistencia("verificar atualização de bairro", err)
	}
	if linhas == 0 {
		return domain.NovoErroValidacao("não foi possível alterar o bairro, visto que não existe um bairro com o código: %d", bairro.CodigoBairro)
	}
	return nil
}

func (r *bairroRepository) CodigoExistente(ctx context.Context, codigo int) (bool, error) {
	return existeBairro(ctx, r.db, codigo)
}
