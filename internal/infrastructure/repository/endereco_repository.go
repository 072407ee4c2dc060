package repository

import (
	"context"
	"database/sql"

	"github.com/HectorBonilhaa/cadastro_backend/internal/domain"
)

type enderecoRepository struct {
	db *sql.DB
}

// NewEnderecoRepository cria uma nova instância do repositório de endereços
func NewEnderecoRepository(db *sql.DB) domain.EnderecoRepository {
	return &enderecoRepository{db: db}
}

func (r *enderecoRepository) Buscar(ctx context.Context, f domain.EnderecoFiltro) ([]domain.Endereco, error) {
	var filtro filtro
	if f.CodigoEndereco != nil {
		filtro.Igual("codigo_endereco", *f.CodigoEndereco)
	}
	if f.CodigoPessoa != nil {
		filtro.Igual("codigo_pessoa", *f.CodigoPessoa)
	}
	if f.CodigoBairro != nil {
		filtro.Igual("codigo_bairro", *f.CodigoBairro)
	}

	query := `
		SELECT codigo_endereco, codigo_pessoa, codigo_bairro, nome_rua, numero, complemento, cep
		FROM tb_endereco` + filtro.Where() + `
		ORDER BY codigo_endereco DESC
	`

	rows, err := r.db.QueryContext(ctx, query, filtro.Args()...)
	if err != nil {
		return nil, domain.NovoErroPersistencia("consultar endereços", err)
	}
	defer rows.Close()

	enderecos := []domain.Endereco{}
	for rows.Next() {
		var e domain.Endereco
		var complemento sql.NullString
		if err := rows.Scan(&e.CodigoEndereco, &e.CodigoPessoa, &e.CodigoBairro,
			&e.NomeRua, &e.Numero, &complemento, &e.Cep); err != nil {
			return nil, domain.NovoErroPersistencia("escanear endereço", err)
		}
		if complemento.Valid {
			e.Complemento = complemento.String
		}
		enderecos = append(enderecos, e)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NovoErroPersistencia("percorrer endereços", err)
	}

	return enderecos, nil
}

func (r *enderecoRepository) Criar(ctx context.Context, endereco *domain.Endereco) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.NovoErroPersistencia("iniciar transação", err)
	}
	defer tx.Rollback()

	if err := inserirEndereco(ctx, tx, endereco, endereco.CodigoPessoa); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return domain.NovoErroPersistencia("confirmar transação", err)
	}
	return nil
}

func (r *enderecoRepository) Atualizar(ctx context.Context, endereco *domain.Endereco) error {
	query := `
		UPDATE tb_endereco
		SET codigo_pessoa = $1,
		    codigo_bairro = $2,
		    nome_rua = $3,
		    numero = $4,
		    complemento = $5,
		    cep = $6
		WHERE codigo_endereco = $7
	`

	result, err := r.db.ExecContext(ctx, query,
		endereco.CodigoPessoa, endereco.CodigoBairro, endereco.NomeRua,
		endereco.Numero, paraNullString(endereco.Complemento), endereco.Cep,
		endereco.CodigoEndereco)
	if err != nil {
		return domain.NovoErroPersistencia("atualizar endereço", err)
	}

	linhas, err := result.RowsAffected()
	if err != nil {
		return domain.NovoErroPersistencia("verificar atualização de endereço", err)
	}
	if linhas == 0 {
		return domain.NovoErroValidacao("não foi possível alterar o endereço, visto que não existe um endereço com o código: %d", endereco.CodigoEndereco)
	}
	return nil
}

func (r *enderecoRepository) Excluir(ctx context.Context, codigo int) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM tb_endereco WHERE codigo_endereco = $1`, codigo)
	if err != nil {
		return domain.NovoErroPersistencia("excluir endereço", err)
	}

	linhas, err := result.RowsAffected()
	if err != nil {
		return domain.NovoErroPersistencia("verificar exclusão de endereço", err)
	}
	if linhas == 0 {
		return domain.NovoErroValidacao("não foi possível excluir o endereço, visto que não existe um endereço com o código: %d", codigo)
	}
	return nil
}

func (r *enderecoRepository) CodigoExistente(ctx context.Context, codigo int) (bool, error) {
	return existeEndereco(ctx, r.db, codigo)
}
