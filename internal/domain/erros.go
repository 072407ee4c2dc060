package domain

import "fmt"

// ErroValidacao indica entrada malformada, campo não numérico, status fora
// do intervalo permitido ou referência a um registro inexistente em uma
// escrita. O HTTP responde 400.
type ErroValidacao struct {
	Mensagem string
}

func (e *ErroValidacao) Error() string { return e.Mensagem }

// NovoErroValidacao cria um ErroValidacao com mensagem formatada.
func NovoErroValidacao(formato string, args ...any) *ErroValidacao {
	return &ErroValidacao{Mensagem: fmt.Sprintf(formato, args...)}
}

// ErroNaoEncontrado indica que uma consulta por chave única não encontrou
// o registro. O HTTP responde 404.
type ErroNaoEncontrado struct {
	Mensagem string
}

func (e *ErroNaoEncontrado) Error() string { return e.Mensagem }

// NovoErroNaoEncontrado cria um ErroNaoEncontrado com mensagem formatada.
func NovoErroNaoEncontrado(formato string, args ...any) *ErroNaoEncontrado {
	return &ErroNaoEncontrado{Mensagem: fmt.Sprintf(formato, args...)}
}

// ErroConflito indica violação de unicidade (login, sigla ou nome já
// cadastrado). O HTTP responde 400.
type ErroConflito struct {
	Mensagem string
}

func (e *ErroConflito) Error() string { return e.Mensagem }

// NovoErroConflito cria um ErroConflito com mensagem formatada.
func NovoErroConflito(formato string, args ...any) *ErroConflito {
	return &ErroConflito{Mensagem: fmt.Sprintf(formato, args...)}
}

// ErroPersistencia embrulha uma falha do banco de dados. A mensagem
// original nunca chega ao cliente, apenas ao log.
type ErroPersistencia struct {
	Operacao string
	Err      error
}

func (e *ErroPersistencia) Error() string {
	return fmt.Sprintf("erro de persistência em %s: %v", e.Operacao, e.Err)
}

func (e *ErroPersistencia) Unwrap() error { return e.Err }

// NovoErroPersistencia embrulha err identificando a operação que falhou.
func NovoErroPersistencia(operacao string, err error) *ErroPersistencia {
	return &ErroPersistencia{Operacao: operacao, Err: err}
}
