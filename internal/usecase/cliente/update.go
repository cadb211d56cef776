package cliente

import (
	"context"

	"github.com/viniciusbrks/cadastro-clientes/internal/audit"
	"github.com/viniciusbrks/cadastro-clientes/internal/cache"
	domain "github.com/viniciusbrks/cadastro-clientes/internal/domain/cliente"
	"github.com/viniciusbrks/cadastro-clientes/internal/models"
)

type UpdateCliente struct {
	repo  domain.Repository
	cache *cache.ClientesCache
	audit *audit.Dispatcher
}

func NewUpdateCliente(
	repo domain.Repository,
	cache *cache.ClientesCache,
	audit *audit.Dispatcher,
) *UpdateCliente {
	return &UpdateCliente{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

// Execute substitui os três campos do registro; o id nunca muda.
// Reaplicar o mesmo update é idempotente.
func (uc *UpdateCliente) Execute(
	ctx context.Context,
	id uint,
	nome string,
	idade int,
	uf string,
) (*models.Cliente, error) {

	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.Nome = nome
	c.Idade = idade
	c.UF = uf

	domain.Normalize(c)
	if err := domain.Validate(c); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx)

	uc.audit.Dispatch(audit.Event{
		Action:   "cliente_updated",
		Entity:   "cliente",
		EntityID: &c.ID,
		Metadata: c,
	})

	return c, nil
}
