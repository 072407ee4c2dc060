package repository

import "database/sql"

// As duas origens de consulta precisam continuar satisfazendo consultor.
var (
	_ consultor = (*sql.DB)(nil)
	_ consultor = (*sql.Tx)(nil)
)
