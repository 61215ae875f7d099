package store

import (
	"context"
	"encoding/json"
	"fmt"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"workshop-service/internal/model"
)

var migrationStatements = []string{
	`CREATE TABLE IF NOT EXISTS orders (
		id TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		payload TEXT NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_orders_position ON orders (position);`,
}

type orderRow struct {
	ID       string `gorm:"column:id;primaryKey"`
	Position int    `gorm:"column:position"`
	Payload  string `gorm:"column:payload"`
}

func (orderRow) TableName() string {
	return "orders"
}

// SQLiteStore keeps the collection in a local sqlite file, one JSON payload
// per order. The whole-collection replace contract is preserved: Save
// rewrites the table inside a single transaction.
type SQLiteStore struct {
	db *gorm.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        path,
		}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	if err := runMigrations(db); err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}

func (s *SQLiteStore) Load(ctx context.Context) ([]model.Order, error) {
	var rows []orderRow
	if err := s.db.WithContext(ctx).Order("position ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("read order store: %w", err)
	}

	orders := make([]model.Order, 0, len(rows))
	for _, row := range rows {
		var order model.Order
		if err := json.Unmarshal([]byte(row.Payload), &order); err != nil {
			return nil, fmt.Errorf("%w: order %s: %v", ErrCorruptStore, row.ID, err)
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func (s *SQLiteStore) Save(ctx context.Context, orders []model.Order) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM orders`).Error; err != nil {
			return fmt.Errorf("clear order store: %w", err)
		}
		for i, order := range orders {
			payload, err := json.Marshal(order)
			if err != nil {
				return fmt.Errorf("encode order %s: %w", order.ID, err)
			}
			row := orderRow{ID: order.ID, Position: i, Payload: string(payload)}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("write order %s: %w", order.ID, err)
			}
		}
		return nil
	})
}
