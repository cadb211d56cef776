package cliente

import (
	"context"

	domain "github.com/viniciusbrks/cadastro-clientes/internal/domain/cliente"
	"github.com/viniciusbrks/cadastro-clientes/internal/models"
)

type GetCliente struct {
	repo domain.Repository
}

func NewGetCliente(repo domain.Repository) *GetCliente {
	return &GetCliente{repo: repo}
}

func (uc *GetCliente) Execute(ctx context.Context, id uint) (*models.Cliente, error) {
	return uc.repo.GetByID(ctx, id)
}
