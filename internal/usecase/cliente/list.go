package cliente

import (
	"context"

	"github.com/viniciusbrks/cadastro-clientes/internal/cache"
	domain "github.com/viniciusbrks/cadastro-clientes/internal/domain/cliente"
	"github.com/viniciusbrks/cadastro-clientes/internal/models"
)

type ListClientes struct {
	repo  domain.Repository
	cache *cache.ClientesCache
}

func NewListClientes(repo domain.Repository, cache *cache.ClientesCache) *ListClientes {
	return &ListClientes{
		repo:  repo,
		cache: cache,
	}
}

func (uc *ListClientes) Execute(ctx context.Context) ([]models.Cliente, error) {
	if clientes, ok := uc.cache.Get(ctx); ok {
		return clientes, nil
	}

	clientes, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	uc.cache.Set(ctx, clientes)

	return clientes, nil
}
