package repository

import (
	"context"

	"github.com/Carlos-148/App-Economia-CB/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClienteRepository interface {
	Create(ctx context.Context, c *model.Cliente) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Cliente, error)
	List(ctx context.Context, soloActivos bool) ([]model.Cliente, error)
	SetActivo(ctx context.Context, id uuid.UUID, activo bool) error
}

type clienteRepo struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository { return &clienteRepo{db: db} }

func (r *clienteRepo) Create(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *clienteRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *clienteRepo) List(ctx context.Context, soloActivos bool) ([]model.Cliente, error) {
	q := r.db.WithContext(ctx).Order("nombre ASC")
	if soloActivos {
		q = q.Where("activo = true")
	}
	var clientes []model.Cliente
	err := q.Find(&clientes).Error
	return clientes, err
}

func (r *clienteRepo) SetActivo(ctx context.Context, id uuid.UUID, activo bool) error {
	res := r.db.WithContext(ctx).Model(&model.Cliente{}).
		Where("id = ?", id).
		Update("activo", activo)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
