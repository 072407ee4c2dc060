package repository

import (
	"context"
	"database/sql"

	"github.com/HectorBonilhaa/cadastro_backend/internal/domain"
)

type pessoaRepository struct {
	db *sql.DB
}

// NewPessoaRepository cria uma nova instância do repositório do agregado de pessoa
func NewPessoaRepository(db *sql.DB) domain.PessoaRepository {
	return &pessoaRepository{db: db}
}

// Buscar retorna as pessoas que atendem ao filtro, sem endereços, ordenadas
// por código decrescente
func (r *pessoaRepository) Buscar(ctx context.Context, f domain.PessoaFiltro) ([]domain.Pessoa, error) {
	// Filtros de listagem comparam exatamente; só a unicidade de login
	// ignora caixa.
	var filtro filtro
	if f.Nome != "" {
		filtro.Igual("nome", f.Nome)
	}
	if f.Sobrenome != "" {
		filtro.Igual("sobrenome", f.Sobrenome)
	}
	if f.Idade != nil {
		filtro.Igual("idade", *f.Idade)
	}
	if f.Login != "" {
		filtro.Igual("login", f.Login)
	}
	if f.Senha != "" {
		filtro.Igual("senha", f.Senha)
	}
	if f.Status != nil {
		filtro.Igual("status", *f.Status)
	}

	query := `
		SELECT codigo_pessoa, nome, sobrenome, idade, login, senha, status
		FROM tb_pessoa` + filtro.Where() + `
		ORDER BY codigo_pessoa DESC
	`

	rows, err := r.db.QueryContext(ctx, query, filtro.Args()...)
	if err != nil {
		return nil, domain.NovoErroPersistencia("consultar pessoas", err)
	}
	defer rows.Close()

	pessoas := []domain.Pessoa{}
	for rows.Next() {
		var p domain.Pessoa
		if err := rows.Scan(&p.CodigoPessoa, &p.Nome, &p.Sobrenome, &p.Idade, &p.Login, &p.Senha, &p.Status); err != nil {
			return nil, domain.NovoErroPersistencia("escanear pessoa", err)
		}
		p.Enderecos = []domain.Endereco{}
		pessoas = append(pessoas, p)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NovoErroPersistencia("percorrer pessoas", err)
	}

	return pessoas, nil
}

// BuscarPorCodigo retorna a pessoa com seus endereços e a hierarquia
// bairro → município → UF de cada um. Retorna nil quando não existe.
func (r *pessoaRepository) BuscarPorCodigo(ctx context.Context, codigo int) (*domain.Pessoa, error) {
	query := `
		SELECT codigo_pessoa, nome, sobrenome, idade, login, senha, status
		FROM tb_pessoa
		WHERE codigo_pessoa = $1
	`

	pessoa := &domain.Pessoa{}
	err := r.db.QueryRowContext(ctx, query, codigo).Scan(
		&pessoa.CodigoPessoa,
		&pessoa.Nome,
		&pessoa.Sobrenome,
		&pessoa.Idade,
		&pessoa.Login,
		&pessoa.Senha,
		&pessoa.Status,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, domain.NovoErroPersistencia("consultar pessoa", err)
	}

	enderecosQuery := `
		SELECT
			e.codigo_endereco,
			e.codigo_pessoa,
			e.codigo_bairro,
			e.nome_rua,
			e.numero,
			e.complemento,
			e.cep,
			b.codigo_bairro,
			b.codigo_municipio,
			b.nome,
			b.status,
			m.codigo_municipio,
			m.codigo_uf,
			m.nome,
			m.status,
			u.codigo_uf,
			u.sigla,
			u.nome,
			u.status
		FROM tb_endereco e
		JOIN tb_bairro b ON b.codigo_bairro = e.codigo_bairro
		JOIN tb_municipio m ON m.codigo_municipio = b.codigo_municipio
		JOIN tb_uf u ON u.codigo_uf = m.codigo_uf
		WHERE e.codigo_pessoa = $1
		ORDER BY e.codigo_endereco
	`

	rows, err := r.db.QueryContext(ctx, enderecosQuery, codigo)
	if err != nil {
		return nil, domain.NovoErroPersistencia("consultar endereços da pessoa", err)
	}
	defer rows.Close()

	enderecos := []domain.Endereco{}
	for rows.Next() {
		var e domain.Endereco
		var bairro domain.Bairro
		var municipio domain.Municipio
		var uf domain.UF
		var complemento sql.NullString

		err := rows.Scan(
			&e.CodigoEndereco,
			&e.CodigoPessoa,
			&e.CodigoBairro,
			&e.NomeRua,
			&e.Numero,
			&complemento,
			&e.Cep,
			&bairro.CodigoBairro,
			&bairro.CodigoMunicipio,
			&bairro.Nome,
			&bairro.Status,
			&municipio.CodigoMunicipio,
			&municipio.CodigoUF,
			&municipio.Nome,
			&municipio.Status,
			&uf.CodigoUF,
			&uf.Sigla,
			&uf.Nome,
			&uf.Status,
		)
		if err != nil {
			return nil, domain.NovoErroPersistencia("escanear endereço", err)
		}

		if complemento.Valid {
			e.Complemento = complemento.String
		}
		municipio.UF = &uf
		e.Bairro = &bairro
		e.Municipio = &municipio
		enderecos = append(enderecos, e)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NovoErroPersistencia("percorrer endereços", err)
	}

	pessoa.Enderecos = enderecos
	return pessoa, nil
}

// BuscarEnderecos retorna os endereços persistidos da pessoa, sem a
// hierarquia, usados como base da reconciliação na atualização
func (r *pessoaRepository) BuscarEnderecos(ctx context.Context, codigoPessoa int) ([]domain.Endereco, error) {
	query := `
		SELECT codigo_endereco, codigo_pessoa, codigo_bairro, nome_rua, numero, complemento, cep
		FROM tb_endereco
		WHERE codigo_pessoa = $1
		ORDER BY codigo_endereco
	`

	rows, err := r.db.QueryContext(ctx, query, codigoPessoa)
	if err != nil {
		return nil, domain.NovoErroPersistencia("consultar endereços da pessoa", err)
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

// Criar insere a pessoa e todos os endereços informados em uma única
// transação. Qualquer falha desfaz a pessoa e todos os endereços.
func (r *pessoaRepository) Criar(ctx context.Context, pessoa *domain.Pessoa) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.NovoErroPersistencia("iniciar transação", err)
	}
	defer tx.Rollback()

	codigo, err := proximaSequence(ctx, tx, "sequence_pessoa")
	if err != nil {
		return err
	}
	pessoa.CodigoPessoa = codigo

	query := `
		INSERT INTO tb_pessoa (codigo_pessoa, nome, sobrenome, idade, login, senha, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	if _, err := tx.ExecContext(ctx, query,
		pessoa.CodigoPessoa, pessoa.Nome, pessoa.Sobrenome, pessoa.Idade,
		pessoa.Login, pessoa.Senha, pessoa.Status); err != nil {
		if conflitoUnicidade(err) {
			return domain.NovoErroConflito("já existe um registro com o mesmo login: %s", pessoa.Login)
		}
		return domain.NovoErroPersistencia("inserir pessoa", err)
	}

	for i := range pessoa.Enderecos {
		endereco := &pessoa.Enderecos[i]

		existe, err := existeBairro(ctx, tx, endereco.CodigoBairro)
		if err != nil {
			return err
		}
		if !existe {
			return domain.NovoErroValidacao("não foi possível incluir o endereço, visto que não existe um bairro com o código: %d", endereco.CodigoBairro)
		}

		if err := inserirEndereco(ctx, tx, endereco, pessoa.CodigoPessoa); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return domain.NovoErroPersistencia("confirmar transação", err)
	}
	return nil
}

// Atualizar substitui os campos da pessoa e executa o plano de reconciliação
// de endereços em uma única transação: exclusões primeiro, depois
// atualizações no lugar e inserções, com as validações de existência
// repetidas por item. Qualquer falha desfaz a operação inteira.
func (r *pessoaRepository) Atualizar(ctx context.Context, pessoa *domain.Pessoa, plano domain.PlanoEnderecos) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.NovoErroPersistencia("iniciar transação", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE tb_pessoa
		SET nome = $1,
		    sobrenome = $2,
		    idade = $3,
		    login = $4,
		    senha = $5,
		    status = $6
		WHERE codigo_pessoa = $7
	`

	result, err := tx.ExecContext(ctx, query,
		pessoa.Nome, pessoa.Sobrenome, pessoa.Idade, pessoa.Login,
		pessoa.Senha, pessoa.Status, pessoa.CodigoPessoa)
	if err != nil {
		if conflitoUnicidade(err) {
			return domain.NovoErroConflito("já existe um registro com o mesmo login: %s", pessoa.Login)
		}
		return domain.NovoErroPersistencia("atualizar pessoa", err)
	}

	linhas, err := result.RowsAffected()
	if err != nil {
		return domain.NovoErroPersistencia("verificar atualização de pessoa", err)
	}
	if linhas == 0 {
		return domain.NovoErroValidacao("não foi possível alterar a pessoa, visto que não existe uma pessoa com o código: %d", pessoa.CodigoPessoa)
	}

	for _, codigoEndereco := range plano.Excluir {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM tb_endereco WHERE codigo_endereco = $1 AND codigo_pessoa = $2`,
			codigoEndereco, pessoa.CodigoPessoa); err != nil {
			return domain.NovoErroPersistencia("excluir endereço", err)
		}
	}

	for i := range plano.Atualizar {
		endereco := &plano.Atualizar[i]

		if err := validarEnderecoAtualizacao(ctx, tx, pessoa.CodigoPessoa, endereco); err != nil {
			return err
		}

		updateEndereco := `
			UPDATE tb_endereco
			SET codigo_bairro = $1,
			    nome_rua = $2,
			    numero = $3,
			    complemento = $4,
			    cep = $5
			WHERE codigo_endereco = $6 AND codigo_pessoa = $7
		`
		resultEndereco, err := tx.ExecContext(ctx, updateEndereco,
			endereco.CodigoBairro, endereco.NomeRua, endereco.Numero,
			paraNullString(endereco.Complemento), endereco.Cep,
			endereco.CodigoEndereco, pessoa.CodigoPessoa)
		if err != nil {
			return domain.NovoErroPersistencia("atualizar endereço", err)
		}
		linhasEndereco, err := resultEndereco.RowsAffected()
		if err != nil {
			return domain.NovoErroPersistencia("verificar atualização de endereço", err)
		}
		if linhasEndereco == 0 {
			return domain.NovoErroValidacao("não foi possível alterar o endereço, visto que não existe um endereço com o código: %d para a pessoa com o código: %d", endereco.CodigoEndereco, pessoa.CodigoPessoa)
		}
		endereco.CodigoPessoa = pessoa.CodigoPessoa
	}

	for i := range plano.Inserir {
		endereco := &plano.Inserir[i]

		if err := validarEnderecoInsercao(ctx, tx, pessoa.CodigoPessoa, endereco); err != nil {
			return err
		}
		if err := inserirEndereco(ctx, tx, endereco, pessoa.CodigoPessoa); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return domain.NovoErroPersistencia("confirmar transação", err)
	}
	return nil
}

// Excluir remove a pessoa e, em cascata explícita, seus endereços. A base
// não tem cascade declarado, então são dois DELETEs na mesma transação.
func (r *pessoaRepository) Excluir(ctx context.Context, codigo int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.NovoErroPersistencia("iniciar transação", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM tb_endereco WHERE codigo_pessoa = $1`, codigo); err != nil {
		return domain.NovoErroPersistencia("excluir endereços da pessoa", err)
	}

	result, err := tx.ExecContext(ctx,
		`DELETE FROM tb_pessoa WHERE codigo_pessoa = $1`, codigo)
	if err != nil {
		return domain.NovoErroPersistencia("excluir pessoa", err)
	}

	linhas, err := result.RowsAffected()
	if err != nil {
		return domain.NovoErroPersistencia("verificar exclusão de pessoa", err)
	}
	if linhas == 0 {
		return domain.NovoErroValidacao("não foi possível excluir a pessoa, visto que não existe uma pessoa com o código: %d", codigo)
	}

	if err := tx.Commit(); err != nil {
		return domain.NovoErroPersistencia("confirmar transação", err)
	}
	return nil
}

func (r *pessoaRepository) CodigoExistente(ctx context.Context, codigo int) (bool, error) {
	return existePessoa(ctx, r.db, codigo)
}

func (r *pessoaRepository) LoginExistente(ctx context.Context, login string, excluirCodigo int) (bool, error) {
	return existeLogin(ctx, r.db, login, excluirCodigo)
}

// inserirEndereco atribui a chave pela sequence e grava o endereço já
// vinculado à pessoa, dentro da transação corrente.
func inserirEndereco(ctx context.Context, tx *sql.Tx, endereco *domain.Endereco, codigoPessoa int) error {
	codigo, err := proximaSequence(ctx, tx, "sequence_endereco")
	if err != nil {
		return err
	}
	endereco.CodigoEndereco = codigo
	endereco.CodigoPessoa = codigoPessoa

	query := `
		INSERT INTO tb_endereco (codigo_endereco, codigo_pessoa, codigo_bairro, nome_rua, numero, complemento, cep)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	if _, err := tx.ExecContext(ctx, query,
		endereco.CodigoEndereco, endereco.CodigoPessoa, endereco.CodigoBairro,
		endereco.NomeRua, endereco.Numero, paraNullString(endereco.Complemento),
		endereco.Cep); err != nil {
		return domain.NovoErroPersistencia("inserir endereço", err)
	}
	return nil
}

// validarEnderecoAtualizacao repete, dentro da transação, as verificações de
// existência de pessoa, endereço e bairro antes do UPDATE do item. O endereço
// precisa pertencer à própria pessoa; um código de outra pessoa é rejeitado e
// desfaz a transação inteira.
func validarEnderecoAtualizacao(ctx context.Context, tx *sql.Tx, codigoPessoa int, endereco *domain.Endereco) error {
	existe, err := existePessoa(ctx, tx, codigoPessoa)
	if err != nil {
		return err
	}
	if !existe {
		return domain.NovoErroValidacao("não existe uma pessoa com o código: %d", codigoPessoa)
	}

	existe, err = existeEnderecoDaPessoa(ctx, tx, endereco.CodigoEndereco, codigoPessoa)
	if err != nil {
		return err
	}
	if !existe {
		return domain.NovoErroValidacao("não foi possível alterar o endereço, visto que não existe um endereço com o código: %d para a pessoa com o código: %d", endereco.CodigoEndereco, codigoPessoa)
	}

	existe, err = existeBairro(ctx, tx, endereco.CodigoBairro)
	if err != nil {
		return err
	}
	if !existe {
		return domain.NovoErroValidacao("não foi possível alterar o endereço, visto que não existe um bairro com o código: %d", endereco.CodigoBairro)
	}
	return nil
}

// validarEnderecoInsercao repete, dentro da transação, as verificações de
// existência de pessoa e bairro antes do INSERT do item.
func validarEnderecoInsercao(ctx context.Context, tx *sql.Tx, codigoPessoa int, endereco *domain.Endereco) error {
	existe, err := existePessoa(ctx, tx, codigoPessoa)
	if err != nil {
		return err
	}
	if !existe {
		return domain.NovoErroValidacao("não existe uma pessoa com o código: %d", codigoPessoa)
	}

	existe, err = existeBairro(ctx, tx, endereco.CodigoBairro)
	if err != nil {
		return err
	}
	if !existe {
		return domain.NovoErroValidacao("não foi possível incluir o endereço, visto que não existe um bairro com o código: %d", endereco.CodigoBairro)
	}
	return nil
}
