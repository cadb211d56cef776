package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viniciusbrks/cadastro-clientes/internal/models"
)

func TestNewClientesCache_Desligado(t *testing.T) {
	assert.Nil(t, NewClientesCache(""))
	assert.Nil(t, NewClientesCache("não é uma url"))
}

// Cache nil é um no-op: a API funciona só com o banco.
func TestClientesCache_NilSeguro(t *testing.T) {
	var c *ClientesCache
	ctx := context.Background()

	clientes, ok := c.Get(ctx)
	require.False(t, ok)
	assert.Nil(t, clientes)

	c.Set(ctx, []models.Cliente{{ID: 1, Nome: "Ana", Idade: 30, UF: "SP"}})
	c.Invalidate(ctx)
}
