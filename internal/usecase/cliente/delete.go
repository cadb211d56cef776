package cliente

import (
	"context"

	"github.com/viniciusbrks/cadastro-clientes/internal/audit"
	"github.com/viniciusbrks/cadastro-clientes/internal/cache"
	domain "github.com/viniciusbrks/cadastro-clientes/internal/domain/cliente"
	"github.com/viniciusbrks/cadastro-clientes/internal/httperr"
)

type DeleteCliente struct {
	repo  domain.Repository
	cache *cache.ClientesCache
	audit *audit.Dispatcher
}

func NewDeleteCliente(
	repo domain.Repository,
	cache *cache.ClientesCache,
	audit *audit.Dispatcher,
) *DeleteCliente {
	return &DeleteCliente{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

func (uc *DeleteCliente) Execute(ctx context.Context, id uint) error {
	removed, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}

	if !removed {
		return httperr.ErrBusiness(domain.CodeClienteNaoEncontrado)
	}

	uc.cache.Invalidate(ctx)

	uc.audit.Dispatch(audit.Event{
		Action:   "cliente_deleted",
		Entity:   "cliente",
		EntityID: &id,
	})

	return nil
}
