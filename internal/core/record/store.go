package record

import (
	"context"
	"errors"
	"fmt"

	"github.com/frahmantamala/hr-portal/internal"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is the gorm implementation of Repository for one table.
type Store[T any] struct {
	db *gorm.DB
}

func NewStore[T any](db *gorm.DB) *Store[T] {
	return &Store[T]{db: db}
}

func (s *Store[T]) DB() *gorm.DB {
	return s.db
}

func (s *Store[T]) scoped(ctx context.Context, conds []Cond) *gorm.DB {
	q := s.db.WithContext(ctx).Model(new(T))
	for _, c := range conds {
		q = q.Where(c.Query, c.Args...)
	}
	return q
}

func (s *Store[T]) List(ctx context.Context, opts ListOptions) ([]T, error) {
	q := s.scoped(ctx, opts.Where)
	for _, p := range opts.Preload {
		q = q.Preload(p)
	}
	for _, o := range opts.Order {
		q = q.Order(o)
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	var out []T
	if err := q.Find(&out).Error; err != nil {
		return nil, translate(err)
	}
	return out, nil
}

func (s *Store[T]) Get(ctx context.Context, id int64, preload ...string) (*T, error) {
	q := s.db.WithContext(ctx)
	for _, p := range preload {
		q = q.Preload(p)
	}

	var rec T
	if err := q.Where("id = ?", id).First(&rec).Error; err != nil {
		return nil, translate(err)
	}
	return &rec, nil
}

func (s *Store[T]) Create(ctx context.Context, rec *T) error {
	return translate(s.db.WithContext(ctx).Omit(clause.Associations).Create(rec).Error)
}

func (s *Store[T]) Update(ctx context.Context, rec *T) error {
	return translate(s.db.WithContext(ctx).Omit(clause.Associations).Save(rec).Error)
}

func (s *Store[T]) Delete(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return internal.ErrRecordNotFound
	}
	return nil
}

func (s *Store[T]) Count(ctx context.Context, conds ...Cond) (int64, error) {
	var n int64
	if err := s.scoped(ctx, conds).Count(&n).Error; err != nil {
		return 0, translate(err)
	}
	return n, nil
}

// Sum totals a numeric column over the matching rows; an empty set sums to zero.
func (s *Store[T]) Sum(ctx context.Context, column string, conds ...Cond) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	row := s.scoped(ctx, conds).Select(fmt.Sprintf("SUM(%s)", column)).Row()
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, translate(err)
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return internal.ErrRecordNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return internal.ErrDuplicateRecord.WithCause(err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return internal.ErrInvalidReference.WithCause(err)
	default:
		return err
	}
}
