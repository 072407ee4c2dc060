package repository

import (
	"context"
	"database/sql"

	"github.com/HectorBonilhaa/cadastro_backend/internal/domain"
)

type municipioRepository struct {
	db *sql.DB
}

// NewMunicipioRepository cria uma nova instância do repositório de municípios
func NewMunicipioRepository(db *sql.DB) domain.MunicipioRepository {
	return &municipioRepository{db: db}
}

func (r *municipioRepository) Buscar(ctx context.Context, f domain.MunicipioFiltro) ([]domain.Municipio, error) {
	var filtro filtro
	if f.CodigoMunicipio != nil {
		filtro.Igual("codigo_municipio", *f.CodigoMunicipio)
	}
	if f.CodigoUF != nil {
		filtro.Igual("codigo_uf", *f.CodigoUF)
	}
	if f.Nome != "" {
		filtro.IgualSemCaixa("nome", f.Nome)
	}
	if f.Status != nil {
		filtro.Igual("status", *f.Status)
	}

	query := `
		SELECT codigo_municipio, codigo_uf, nome, status
		FROM tb_municipio` + filtro.Where() + `
		ORDER BY codigo_municipio DESC
	`

	rows, err := r.db.QueryContext(ctx, query, filtro.Args()...)
	if err != nil {
		return nil, domain.NovoErroPersistencia("consultar municípios", err)
	}
	defer rows.Close()

	municipios := []domain.Municipio{}
	for rows.Next() {
		var m domain.Municipio
		if err := rows.Scan(&m.CodigoMunicipio, &m.CodigoUF, &m.Nome, &m.Status); err != nil {
			return nil, domain.NovoErroPersistencia("escanear município", err)
		}
		municipios = append(municipios, m)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NovoErroPersistencia("percorrer municípios", err)
	}

	return municipios, nil
}

func (r *municipioRepository) Criar(ctx context.Context, municipio *domain.Municipio) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.NovoErroPersistencia("iniciar transação", err)
	}
	defer tx.Rollback()

	codigo, err := proximaSequence(ctx, tx, "sequence_municipio")
	if err != nil {
		return err
	}
	municipio.CodigoMunicipio = codigo

	query := `
		INSERT INTO tb_municipio (codigo_municipio, codigo_uf, nome, status)
		VALUES ($1, $2, $3, $4)
	`

	if _, err := tx.ExecContext(ctx, query,
		municipio.CodigoMunicipio, municipio.CodigoUF, municipio.Nome, municipio.Status); err != nil {
		return domain.NovoErroPersistencia("inserir município", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.NovoErroPersistencia("confirmar transação", err)
	}
	return nil
}

func (r *municipioRepository) Atualizar(ctx context.Context, municipio *domain.Municipio) error {
	query := `
		UPDATE tb_municipio
		SET codigo_uf = $1,
		    nome = $2,
		    status = $3
		WHERE codigo_municipio = $4
	`

	result, err := r.db.ExecContext(ctx, query,
		municipio.CodigoUF, municipio.Nome, municipio.Status, municipio.CodigoMunicipio)
	if err != nil {
		return domain.NovoErroPersistencia("atualizar município", err)
	}

	linhas, err := result.RowsAffected()
	if err != nil {
		return domain.NovoErroPersistencia("verificar atualização de município", err)
	}
	if linhas == 0 {
		return domain.NovoErroValidacao("não foi possível alterar o município, visto que não existe um município com o código: %d", municipio.CodigoMunicipio)
	}
	return nil
}

func (r *municipioRepository) CodigoExistente(ctx context.Context, codigo int) (bool, error) {
	return existeMunicipio(ctx, r.db, codigo)
}
