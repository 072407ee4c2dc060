package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFiltro_SemCondicoes(t *testing.T) {
	var f filtro
	assert.Empty(t, f.Where())
	assert.Empty(t, f.Args())
}

func TestFiltro_Igual(t *testing.T) {
	var f filtro
	f.Igual("codigo_uf", 11)

	assert.Equal(t, " WHERE codigo_uf = $1", f.Where())
	assert.Equal(t, []any{11}, f.Args())
}

func TestFiltro_IgualSemCaixa(t *testing.T) {
	var f filtro
	f.IgualSemCaixa("sigla", "df")

	assert.Equal(t, " WHERE LOWER(sigla) = LOWER($1)", f.Where())
	assert.Equal(t, []any{"df"}, f.Args())
}

// Os placeholders seguem a ordem de inserção das condições.
func TestFiltro_CondicoesCombinadas(t *testing.T) {
	var f filtro
	f.Igual("codigo_uf", 11)
	f.IgualSemCaixa("nome", "Brasília")
	f.Igual("status", 1)

	assert.Equal(t, " WHERE codigo_uf = $1 AND LOWER(nome) = LOWER($2) AND status = $3", f.Where())
	assert.Equal(t, []any{11, "Brasília", 1}, f.Args())
}
