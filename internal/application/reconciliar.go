package application

import "github.com/HectorBonilhaa/cadastro_backend/internal/domain"

// ReconciliarEnderecos compara os endereços persistidos de uma pessoa com a
// lista desejada enviada na atualização e particiona o resultado em três
// conjuntos, chaveados por codigoEndereco:
//
//   - Excluir: persistidos que não aparecem na lista desejada
//   - Atualizar: desejados que carregam codigoEndereco
//   - Inserir: desejados sem codigoEndereco (recebem chave nova na gravação)
//
// A função é pura; a execução transacional do plano fica no repositório,
// que roda as exclusões antes das atualizações e inserções.
func ReconciliarEnderecos(atuais, desejados []domain.Endereco) domain.PlanoEnderecos {
	var plano domain.PlanoEnderecos

	mantidos := make(map[int]bool, len(desejados))
	for _, endereco := range desejados {
		if endereco.CodigoEndereco != 0 {
			mantidos[endereco.CodigoEndereco] = true
		}
	}

	for _, endereco := range atuais {
		if !mantidos[endereco.CodigoEndereco] {
			plano.Excluir = append(plano.Excluir, endereco.CodigoEndereco)
		}
	}

	for _, endereco := range desejados {
		if endereco.CodigoEndereco != 0 {
			plano.Atualizar = append(plano.Atualizar, endereco)
		} else {
			plano.Inserir = append(plano.Inserir, endereco)
		}
	}

	return plano
}
