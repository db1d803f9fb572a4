package repository

import (
	"context"

	"github.com/Carlos-148/App-Economia-CB/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubproductoRepository covers recipes and their production runs.
type SubproductoRepository interface {
	CreateTx(tx *gorm.DB, s *model.Subproducto) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Subproducto, error)
	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Subproducto, error)
	List(ctx context.Context) ([]model.Subproducto, error)
	Delete(ctx context.Context, id uuid.UUID) error

	CreateProduccionTx(tx *gorm.DB, p *model.SubproductoProduccion) error
	// FindUltimaProduccion returns the most recent run for a recipe, or
	// gorm.ErrRecordNotFound when the recipe has never been produced.
	FindUltimaProduccion(ctx context.Context, subproductoID uuid.UUID) (*model.SubproductoProduccion, error)
	ListProducciones(ctx context.Context, subproductoID uuid.UUID, limit int) ([]model.SubproductoProduccion, error)
	DeleteProduccion(ctx context.Context, id uuid.UUID) error

	DB() *gorm.DB
}

type subproductoRepo struct{ db *gorm.DB }

func NewSubproductoRepository(db *gorm.DB) SubproductoRepository { return &subproductoRepo{db: db} }

func (r *subproductoRepo) CreateTx(tx *gorm.DB, s *model.Subproducto) error {
	// Ingredientes are persisted through the association in the same insert
	return tx.Create(s).Error
}

func (r *subproductoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Subproducto, error) {
	var s model.Subproducto
	err := r.db.WithContext(ctx).Preload("Ingredientes").First(&s, id).Error
	return &s, err
}

func (r *subproductoRepo) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Subproducto, error) {
	var s model.Subproducto
	err := tx.Preload("Ingredientes").First(&s, id).Error
	return &s, err
}

func (r *subproductoRepo) List(ctx context.Context) ([]model.Subproducto, error) {
	var subs []model.Subproducto
	err := r.db.WithContext(ctx).Order("nombre ASC").Find(&subs).Error
	return subs, err
}

func (r *subproductoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("subproducto_id = ?", id).Delete(&model.SubproductoIngrediente{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Subproducto{}, id).Error
	})
}

func (r *subproductoRepo) CreateProduccionTx(tx *gorm.DB, p *model.SubproductoProduccion) error {
	return tx.Create(p).Error
}

func (r *subproductoRepo) FindUltimaProduccion(ctx context.Context, subproductoID uuid.UUID) (*model.SubproductoProduccion, error) {
	var p model.SubproductoProduccion
	err := r.db.WithContext(ctx).
		Where("subproducto_id = ?", subproductoID).
		Order("created_at DESC").
		First(&p).Error
	return &p, err
}

func (r *subproductoRepo) ListProducciones(ctx context.Context, subproductoID uuid.UUID, limit int) ([]model.SubproductoProduccion, error) {
	if limit < 1 {
		limit = 50
	}
	var runs []model.SubproductoProduccion
	err := r.db.WithContext(ctx).
		Where("subproducto_id = ?", subproductoID).
		Order("created_at DESC").
		Limit(limit).
		Find(&runs).Error
	return runs, err
}

func (r *subproductoRepo) DeleteProduccion(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.SubproductoProduccion{}, id).Error
}

func (r *subproductoRepo) DB() *gorm.DB { return r.db }
