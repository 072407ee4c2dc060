package repository

import (
	"context"
	"database/sql"

	"github.com/HectorBonilhaa/cadastro_backend/internal/domain"
)

type ufRepository struct {
	db *sql.DB
}

// NewUFRepository cria uma nova instância do repositório de UFs
func NewUFRepository(db *sql.DB) domain.UFRepository {
	return &ufRepository{db: db}
}

// Buscar retorna as UFs que atendem ao filtro, ordenadas por código decrescente
func (r *ufRepository) Buscar(ctx context.Context, f domain.UFFiltro) ([]domain.UF, error) {
	var filtro filtro
	if f.CodigoUF != nil {
		filtro.Igual("codigo_uf", *f.CodigoUF)
	}
	if f.Sigla != "" {
		filtro.IgualSemCaixa("sigla", f.Sigla)
	}
	if f.Nome != "" {
		filtro.IgualSemCaixa("nome", f.Nome)
	}
	if f.Status != nil {
		filtro.Igual("status", *f.Status)
	}

	query := `
		SELECT codigo_uf, sigla, nome, status
		FROM tb_uf` + filtro.Where() + `
		ORDER BY codigo_uf DESC
	`

	rows, err := r.db.QueryContext(ctx, query, filtro.Args()...)
	if err != nil {
		return nil, domain.NovoErroPersistencia("consultar UFs", err)
	}
	defer rows.Close()

	ufs := []domain.UF{}
	for rows.Next() {
		var uf domain.UF
		if err := rows.Scan(&uf.CodigoUF, &uf.Sigla, &uf.Nome, &uf.Status); err != nil {
			return nil, domain.NovoErroPersistencia("escanear UF", err)
		}
		ufs = append(ufs, uf)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NovoErroPersistencia("percorrer UFs", err)
	}

	return ufs, nil
}

// Criar insere uma nova UF atribuindo o código pela sequence
func (r *ufRepository) Criar(ctx context.Context, uf *domain.UF) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.NovoErroPersistencia("iniciar transação", err)
	}
	defer tx.Rollback()

	codigo, err := proximaSequence(ctx, tx, "sequence_uf")
	if err != nil {
		return err
	}
	uf.CodigoUF = codigo

	query := `
		INSERT INTO tb_uf (codigo_uf, sigla, nome, status)
		VALUES ($1, $2, $3, $4)
	`

	if _, err := tx.ExecContext(ctx, query, uf.CodigoUF, uf.Sigla, uf.Nome, uf.Status); err != nil {
		if conflitoUnicidade(err) {
			return domain.NovoErroConflito("já existe um registro com a mesma sigla ou nome: %s / %s", uf.Sigla, uf.Nome)
		}
		return domain.NovoErroPersistencia("inserir UF", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.NovoErroPersistencia("confirmar transação", err)
	}
	return nil
}

// Atualizar substitui todos os campos não-chave da UF
func (r *ufRepository) Atualizar(ctx context.Context, uf *domain.UF) error {
	query := `
		UPDATE tb_uf
		SET sigla = $1,
		    nome = $2,
		    status = $3
		WHERE codigo_uf = $4
	`

	result, err := r.db.ExecContext(ctx, query, uf.Sigla, uf.Nome, uf.Status, uf.CodigoUF)
	if err != nil {
		if conflitoUnicidade(err) {
			return domain.NovoErroConflito("já existe um registro com a mesma sigla ou nome: %s / %s", uf.Sigla, uf.Nome)
		}
		return domain.NovoErroPersistencia("atualizar UF", err)
	}

	linhas, err := result.RowsAffected()
	if err != nil {
		return domain.NovoErroPersistencia("verificar atualização de UF", err)
	}
	if linhas == 0 {
		return domain.NovoErroValidacao("não foi possível alterar a UF, visto que não existe uma UF com o código: %d", uf.CodigoUF)
	}
	return nil
}

// Excluir remove a UF pelo código
func (r *ufRepository) Excluir(ctx context.Context, codigo int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tb_uf WHERE codigo_uf = $1`, codigo)
	if err != nil {
		return domain.NovoErroPersistencia("excluir UF", err)
	}

	linhas, err := result.RowsAffected()
	if err != nil {
		return domain.NovoErroPersistencia("verificar exclusão de UF", err)
	}
	if linhas == 0 {
		return domain.NovoErroNaoEncontrado("não existe uma UF com o código: %d", codigo)
	}
	return nil
}

func (r *ufRepository) CodigoExistente(ctx context.Context, codigo int) (bool, error) {
	return existeUF(ctx, r.db, codigo)
}

func (r *ufRepository) SiglaExistente(ctx context.Context, sigla string, excluirCodigo int) (bool, error) {
	return existeSigla(ctx, r.db, sigla, excluirCodigo)
}

func (r *ufRepository) NomeExistente(ctx context.Context, nome string, excluirCodigo int) (bool, error) {
	return existeNomeUF(ctx, r.db, nome, excluirCodigo)
}
