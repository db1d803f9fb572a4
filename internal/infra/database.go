package infra

import (
	"fmt"

	"github.com/Carlos-148/App-Economia-CB/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update all tables, then applies the idempotent SQL patches that
// AutoMigrate cannot express (extensions, partial indexes).
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	// gen_random_uuid() defaults need pgcrypto on Postgres < 13
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		return nil, fmt.Errorf("pgcrypto extension: %w", err)
	}

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

// RunMigrations creates or updates the schema. Also used by integration tests
// against a throwaway database.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Usuario{},
		&model.Producto{},
		&model.Compra{},
		&model.Subproducto{},
		&model.SubproductoIngrediente{},
		&model.SubproductoProduccion{},
		&model.ProductoFinal{},
		&model.ProductoFinalSubproducto{},
		&model.Cliente{},
		&model.VentaCabecera{},
		&model.VentaItem{},
		&model.Contabilidad{},
		&model.GastoMoney{},
		&model.GastoProducto{},
		&model.EfectivoMovimiento{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot handle.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		// Partial index for the capital sum: only "Capital Extra" rows count.
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_efectivo_capital_extra') THEN
		    CREATE INDEX idx_efectivo_capital_extra
		        ON efectivo_movimientos (fecha)
		        WHERE tipo = 'Capital Extra';
		  END IF;
		END $$`,
		// Partial index for the purchase-expense sum used by the cash gate.
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_gastos_money_compras') THEN
		    CREATE INDEX idx_gastos_money_compras
		        ON gastos_money (fecha)
		        WHERE compra_id IS NOT NULL;
		  END IF;
		END $$`,
	}

	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("schema patch: %w", err)
		}
	}
	return nil
}
