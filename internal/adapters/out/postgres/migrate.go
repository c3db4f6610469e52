package postgres

import (
	"fmt"

	"packing/internal/adapters/out/postgres/cartonrepo"
	"packing/internal/adapters/out/postgres/orderrepo"
	"packing/internal/adapters/out/postgres/packrepo"
	"packing/internal/adapters/out/postgres/pairguardrepo"

	"gorm.io/gorm"
)

// Models lists every persisted DTO in dependency order.
func Models() []any {
	return []any{
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&cartonrepo.CartonTypeDTO{},
		&packrepo.PackDTO{},
		&packrepo.BoxDTO{},
		&packrepo.ItemDTO{},
		&pairguardrepo.PairGuardDTO{},
	}
}

// constraints holds statements gorm tags cannot express. Deleting an order
// removes its packs; boxes and items follow through their own cascades.
var constraints = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_packs_active_order
		ON packs (order_id) WHERE status = 'in_progress'`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'fk_packs_order') THEN
			ALTER TABLE packs ADD CONSTRAINT fk_packs_order
				FOREIGN KEY (order_id) REFERENCES orders (id) ON DELETE CASCADE;
		END IF;
	END $$`,
}

// Migrate creates or updates the schema. It is idempotent.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	for _, stmt := range constraints {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("apply constraint: %w", err)
		}
	}
	return nil
}
