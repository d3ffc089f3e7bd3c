package crud

import (
	"context"

	"gorm.io/gorm"
)

// Store is the one list/get/insert/update/delete contract shared by every
// content panel. Each panel instantiates it with its model type, primary-key
// column and default ordering instead of hand-duplicating the queries.
// Listing always hits the database; nothing is cached between calls.
type Store[T any] struct {
	db    *gorm.DB
	pk    string
	order string
}

func NewStore[T any](db *gorm.DB, pk, order string) *Store[T] {
	return &Store[T]{db: db, pk: pk, order: order}
}

func (s *Store[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	err := s.db.WithContext(ctx).Order(s.order).Find(&out).Error
	return out, err
}

func (s *Store[T]) ListPage(ctx context.Context, offset, limit int) ([]T, int64, error) {
	var out []T
	var total int64
	var zero T
	if err := s.db.WithContext(ctx).Model(&zero).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := s.db.WithContext(ctx).Order(s.order).Offset(offset).Limit(limit).Find(&out).Error
	return out, total, err
}

func (s *Store[T]) GetByID(ctx context.Context, id string) (*T, error) {
	var m T
	if err := s.db.WithContext(ctx).First(&m, s.pk+" = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Store[T]) Create(ctx context.Context, m *T) error {
	return s.db.WithContext(ctx).Create(m).Error
}

func (s *Store[T]) Update(ctx context.Context, m *T) error {
	return s.db.WithContext(ctx).Save(m).Error
}

// Delete reports the number of rows removed so callers can 404 on zero.
func (s *Store[T]) Delete(ctx context.Context, id string) (int64, error) {
	var zero T
	res := s.db.WithContext(ctx).Delete(&zero, s.pk+" = ?", id)
	return res.RowsAffected, res.Error
}
