package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// GormGateway stores rows in a SQL database through gorm
type GormGateway struct {
	db *gorm.DB
}

func NewGormGateway(db *gorm.DB) *GormGateway {
	return &GormGateway{db: db}
}

// Select loads matching rows of table into dest
func (g *GormGateway) Select(ctx context.Context, table string, q Query, dest any) error {
	if err := validateQuery(q); err != nil {
		return err
	}

	tx := applyFilters(g.db.WithContext(ctx).Table(table), q.Filters)
	if q.Order != nil {
		direction := "ASC"
		if q.Order.Desc {
			direction = "DESC"
		}
		tx = tx.Order(q.Order.Column + " " + direction)
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}
	return tx.Find(dest).Error
}

// Insert creates record in table
func (g *GormGateway) Insert(ctx context.Context, table string, record any) error {
	return g.db.WithContext(ctx).Table(table).Create(record).Error
}

// Update applies patch to matching rows and returns how many rows matched
func (g *GormGateway) Update(ctx context.Context, table string, filters []Filter, patch map[string]any) (int64, error) {
	if len(filters) == 0 {
		return 0, fmt.Errorf("%w: update without filters", ErrInvalidFilter)
	}
	if err := validateFilters(filters); err != nil {
		return 0, err
	}
	if err := validatePatch(patch); err != nil {
		return 0, err
	}

	result := applyFilters(g.db.WithContext(ctx).Table(table), filters).Updates(patch)
	return result.RowsAffected, result.Error
}

// InTx runs fn inside a database transaction
func (g *GormGateway) InTx(ctx context.Context, fn func(tx Gateway) error) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormGateway{db: tx})
	})
}

func applyFilters(tx *gorm.DB, filters []Filter) *gorm.DB {
	for _, f := range filters {
		switch f.Op {
		case OpEq:
			tx = tx.Where(f.Column+" = ?", f.Value)
		case OpIn:
			tx = tx.Where(f.Column+" IN ?", f.Value)
		case OpLt:
			tx = tx.Where(f.Column+" < ?", f.Value)
		}
	}
	return tx
}
