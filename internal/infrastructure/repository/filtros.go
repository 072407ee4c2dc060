package repository

import (
	"fmt"
	"strings"
)

// filtro compõe cláusulas WHERE parametrizadas. As colunas vêm somente das
// chamadas literais nos repositórios, nunca da requisição; os valores são
// sempre vinculados por placeholder.
type filtro struct {
	clausulas []string
	args      []any
}

// Igual adiciona a condição coluna = $n.
func (f *filtro) Igual(coluna string, valor any) {
	f.args = append(f.args, valor)
	f.clausulas = append(f.clausulas, fmt.Sprintf("%s = $%d", coluna, len(f.args)))
}

// IgualSemCaixa adiciona a condição LOWER(coluna) = LOWER($n).
func (f *filtro) IgualSemCaixa(coluna string, valor string) {
	f.args = append(f.args, valor)
	f.clausulas = append(f.clausulas, fmt.Sprintf("LOWER(%s) = LOWER($%d)", coluna, len(f.args)))
}

// Where retorna a cláusula montada, com espaço à frente, ou vazio quando
// nenhuma condição foi adicionada.
func (f *filtro) Where() string {
	if len(f.clausulas) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(f.clausulas, " AND ")
}

// Args retorna os valores na ordem dos placeholders.
func (f *filtro) Args() []any {
	return f.args
}
