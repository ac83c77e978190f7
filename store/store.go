// Package store is the relational data-access layer. Every method takes the
// request context and runs against the handle the Store was built with, which
// is either the root connection or an open transaction.
package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/doinggreatt/appetit-backend/apperrors"
	"github.com/doinggreatt/appetit-backend/models"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying handle for plain CRUD handlers.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Open connects using the named driver ("postgres" or "sqlite").
func Open(driver, source string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(source)
	case "sqlite":
		dialector = sqlite.Open(source)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", driver)
	}
	return gorm.Open(dialector, &gorm.Config{TranslateError: true})
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(models.All()...)
}

// SeedLookups creates the order statuses if they are missing.
func SeedLookups(ctx context.Context, db *gorm.DB) error {
	for _, name := range models.OrderStatusNames {
		err := db.WithContext(ctx).
			FirstOrCreate(&models.OrderStatus{}, models.OrderStatus{Name: name}).Error
		if err != nil {
			return fmt.Errorf("seed order status %q: %w", name, err)
		}
	}
	return nil
}

// Transaction runs fn against a Store bound to a single transaction. The
// transaction commits only if fn returns nil.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}

func fetchByID[T any](ctx context.Context, db *gorm.DB, entity string, id uint) (*T, error) {
	var row T
	err := db.WithContext(ctx).First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound(entity, id)
	}
	if err != nil {
		return nil, fmt.Errorf("fetch %s %d: %w", entity, id, err)
	}
	return &row, nil
}

// fetchByParentID returns rows in insertion order.
func fetchByParentID[T any](ctx context.Context, db *gorm.DB, column string, parentID uint) ([]T, error) {
	var rows []T
	err := db.WithContext(ctx).Where(column+" = ?", parentID).Order("id").Find(&rows).Error
	return rows, err
}

func fetchByIDs[T any](ctx context.Context, db *gorm.DB, ids []uint) ([]T, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []T
	err := db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&rows).Error
	return rows, err
}

func fetchAll[T any](ctx context.Context, db *gorm.DB) ([]T, error) {
	var rows []T
	err := db.WithContext(ctx).Order("id").Find(&rows).Error
	return rows, err
}

func insert(ctx context.Context, db *gorm.DB, entity string, value interface{}) error {
	err := db.WithContext(ctx).Create(value).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.Conflict("%s already exists", entity)
	}
	return err
}
