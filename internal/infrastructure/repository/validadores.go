package repository

import (
	"context"

	"github.com/HectorBonilhaa/cadastro_backend/internal/domain"
)

// Validadores de existência e unicidade. Cada um é uma consulta COUNT(*)
// avulsa contra o estado atual; as variantes com excluirCodigo
// desconsideram o próprio registro em atualização.

func existeRegistro(ctx context.Context, q consultor, sqlTexto string, args ...any) (bool, error) {
	var quantidade int
	if err := q.QueryRowContext(ctx, sqlTexto, args...).Scan(&quantidade); err != nil {
		return false, domain.NovoErroPersistencia("verificar existência de registro", err)
	}
	return quantidade > 0, nil
}

func existeUF(ctx context.Context, q consultor, codigo int) (bool, error) {
	return existeRegistro(ctx, q,
		`SELECT COUNT(*) FROM tb_uf WHERE codigo_uf = $1`, codigo)
}

func existeMunicipio(ctx context.Context, q consultor, codigo int) (bool, error) {
	return existeRegistro(ctx, q,
		`SELECT COUNT(*) FROM tb_municipio WHERE codigo_municipio = $1`, codigo)
}

func existeBairro(ctx context.Context, q consultor, codigo int) (bool, error) {
	return existeRegistro(ctx, q,
		`SELECT COUNT(*) FROM tb_bairro WHERE codigo_bairro = $1`, codigo)
}

func existePessoa(ctx context.Context, q consultor, codigo int) (bool, error) {
	return existeRegistro(ctx, q,
		`SELECT COUNT(*) FROM tb_pessoa WHERE codigo_pessoa = $1`, codigo)
}

func existeEndereco(ctx context.Context, q consultor, codigo int) (bool, error) {
	return existeRegistro(ctx, q,
		`SELECT COUNT(*) FROM tb_endereco WHERE codigo_endereco = $1`, codigo)
}

func existeEnderecoDaPessoa(ctx context.Context, q consultor, codigoEndereco, codigoPessoa int) (bool, error) {
	return existeRegistro(ctx, q,
		`SELECT COUNT(*) FROM tb_endereco WHERE codigo_endereco = $1 AND codigo_pessoa = $2`,
		codigoEndereco, codigoPessoa)
}

func existeLogin(ctx context.Context, q consultor, login string, excluirCodigo int) (bool, error) {
	if excluirCodigo != 0 {
		return existeRegistro(ctx, q,
			`SELECT COUNT(*) FROM tb_pessoa WHERE LOWER(login) = LOWER($1) AND codigo_pessoa != $2`,
			login, excluirCodigo)
	}
	return existeRegistro(ctx, q,
		`SELECT COUNT(*) FROM tb_pessoa WHERE LOWER(login) = LOWER($1)`, login)
}

func existeSigla(ctx context.Context, q consultor, sigla string, excluirCodigo int) (bool, error) {
	if excluirCodigo != 0 {
		return existeRegistro(ctx, q,
			`SELECT COUNT(*) FROM tb_uf WHERE LOWER(sigla) = LOWER($1) AND codigo_uf != $2`,
			sigla, excluirCodigo)
	}
	return existeRegistro(ctx, q,
		`SELECT COUNT(*) FROM tb_uf WHERE LOWER(sigla) = LOWER($1)`, sigla)
}

func existeNomeUF(ctx context.Context, q consultor, nome string, excluirCodigo int) (bool, error) {
	if excluirCodigo != 0 {
		return existeRegistro(ctx, q,
			`SELECT COUNT(*) FROM tb_uf WHERE LOWER(nome) = LOWER($1) AND codigo_uf != $2`,
			nome, excluirCodigo)
	}
	return existeRegistro(ctx, q,
		`SELECT COUNT(*) FROM tb_uf WHERE LOWER(nome) = LOWER($1)`, nome)
}
