package cliente

import (
	"context"

	"github.com/viniciusbrks/cadastro-clientes/internal/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.Cliente, error)
	GetByID(ctx context.Context, id uint) (*models.Cliente, error)
	Create(ctx context.Context, c *models.Cliente) error
	Update(ctx context.Context, c *models.Cliente) error

	// Delete informa se alguma linha foi de fato removida,
	// para o handler distinguir 404 de 500.
	Delete(ctx context.Context, id uint) (bool, error)
}
