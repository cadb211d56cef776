package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/viniciusbrks/cadastro-clientes/internal/domain/cliente"
	"github.com/viniciusbrks/cadastro-clientes/internal/httperr"
	"github.com/viniciusbrks/cadastro-clientes/internal/models"
)

type ClienteGormRepository struct {
	db *gorm.DB
}

func NewClienteGormRepository(db *gorm.DB) *ClienteGormRepository {
	return &ClienteGormRepository{db: db}
}

func (r *ClienteGormRepository) List(ctx context.Context) ([]models.Cliente, error) {
	var clientes []models.Cliente
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&clientes).Error; err != nil {
		return nil, err
	}
	return clientes, nil
}

func (r *ClienteGormRepository) GetByID(ctx context.Context, id uint) (*models.Cliente, error) {
	var c models.Cliente
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(domain.CodeClienteNaoEncontrado)
		}
		return nil, err
	}
	return &c, nil
}

func (r *ClienteGormRepository) Create(ctx context.Context, c *models.Cliente) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ClienteGormRepository) Update(ctx context.Context, c *models.Cliente) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *ClienteGormRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Cliente{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
