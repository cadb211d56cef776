package cliente

import (
	"context"

	"github.com/viniciusbrks/cadastro-clientes/internal/audit"
	"github.com/viniciusbrks/cadastro-clientes/internal/cache"
	domain "github.com/viniciusbrks/cadastro-clientes/internal/domain/cliente"
	"github.com/viniciusbrks/cadastro-clientes/internal/models"
)

type CreateCliente struct {
	repo  domain.Repository
	cache *cache.ClientesCache
	audit *audit.Dispatcher
}

func NewCreateCliente(
	repo domain.Repository,
	cache *cache.ClientesCache,
	audit *audit.Dispatcher,
) *CreateCliente {
	return &CreateCliente{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

func (uc *CreateCliente) Execute(
	ctx context.Context,
	nome string,
	idade int,
	uf string,
) (*models.Cliente, error) {

	c := models.Cliente{
		Nome:  nome,
		Idade: idade,
		UF:    uf,
	}

	domain.Normalize(&c)
	if err := domain.Validate(&c); err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, &c); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx)

	uc.audit.Dispatch(audit.Event{
		Action:   "cliente_created",
		Entity:   "cliente",
		EntityID: &c.ID,
		Metadata: c,
	})

	return &c, nil
}
