package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/HectorBonilhaa/cadastro_backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Um codigoEndereco que existe na tabela mas pertence a outra pessoa é
// rejeitado dentro da transação, desfazendo inclusive as exclusões já
// executadas do plano.
func TestPessoaRepository_Atualizar_EnderecoDeOutraPessoa(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE tb_pessoa`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM tb_endereco WHERE codigo_endereco = \$1 AND codigo_pessoa = \$2`).
		WithArgs(1, 5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM tb_pessoa`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM tb_endereco WHERE codigo_endereco = \$1 AND codigo_pessoa = \$2`).
		WithArgs(99, 5).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectRollback()

	repo := NewPessoaRepository(db)
	pessoa := &domain.Pessoa{CodigoPessoa: 5, Nome: "Maria", Login: "maria", Status: 1}
	plano := domain.PlanoEnderecos{
		Excluir: []int{1},
		Atualizar: []domain.Endereco{
			{CodigoEndereco: 99, CodigoBairro: 3, NomeRua: "Rua X", Numero: "10", Cep: "70000-000"},
		},
	}

	err = repo.Atualizar(context.Background(), pessoa, plano)

	var ev *domain.ErroValidacao
	require.ErrorAs(t, err, &ev)
	assert.Contains(t, ev.Mensagem, "99")
	assert.Contains(t, ev.Mensagem, "para a pessoa com o código: 5")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPessoaRepository_Atualizar_EnderecoProprioAtualizado(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE tb_pessoa`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM tb_pessoa`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM tb_endereco WHERE codigo_endereco = \$1 AND codigo_pessoa = \$2`).
		WithArgs(7, 5).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM tb_bairro`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectExec(`UPDATE tb_endereco`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewPessoaRepository(db)
	pessoa := &domain.Pessoa{CodigoPessoa: 5, Nome: "Maria", Login: "maria", Status: 1}
	plano := domain.PlanoEnderecos{
		Atualizar: []domain.Endereco{
			{CodigoEndereco: 7, CodigoBairro: 3, NomeRua: "Rua X", Numero: "10", Cep: "70000-000"},
		},
	}

	require.NoError(t, repo.Atualizar(context.Background(), pessoa, plano))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A listagem de pessoas compara os filtros textuais exatamente, sem LOWER.
func TestPessoaRepository_Buscar_FiltrosExatos(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	linhas := sqlmock.NewRows([]string{"codigo_pessoa", "nome", "sobrenome", "idade", "login", "senha", "status"}).
		AddRow(1, "Maria", "Silva", 30, "maria", "segredo", 1)
	mock.ExpectQuery(`FROM tb_pessoa WHERE nome = \$1 AND sobrenome = \$2 AND login = \$3`).
		WithArgs("Maria", "Silva", "maria").
		WillReturnRows(linhas)

	repo := NewPessoaRepository(db)
	pessoas, err := repo.Buscar(context.Background(), domain.PessoaFiltro{
		Nome:      "Maria",
		Sobrenome: "Silva",
		Login:     "maria",
	})

	require.NoError(t, err)
	require.Len(t, pessoas, 1)
	assert.Equal(t, "Maria", pessoas[0].Nome)
	assert.Equal(t, []domain.Endereco{}, pessoas[0].Enderecos)
	assert.NoError(t, mock.ExpectationsWereMet())
}
