package clientapp

import (
	"context"
	"errors"
	"fmt"
	"net/url"
)

// Taxonomia de falhas do app: timeout, rede e HTTP não-2xx
// são surfaces distintas para o usuário.
var (
	ErrTimeout              = errors.New("tempo de resposta esgotado")
	ErrConexao              = errors.New("falha de conexão com o servidor")
	ErrClienteNaoEncontrado = errors.New("cliente não encontrado")
)

// APIError é qualquer resposta não-2xx; o app trata de forma
// genérica, mas o status e a mensagem do servidor ficam disponíveis.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("o servidor respondeu %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("o servidor respondeu %d", e.Status)
}

// classifyTransportError separa timeout de falha de rede.
// O deadline vem do contexto derivado em cada chamada.
func classifyTransportError(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
		return ErrTimeout
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Timeout() {
			return ErrTimeout
		}
		return ErrConexao
	}

	return ErrConexao
}
