// Package record is the persistence contract shared by every domain record:
// list, get, create, update and delete by integer identity.
package record

import (
	"context"
	"time"
)

// Model carries the columns every record table has.
type Model struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m Model) RecordID() int64 {
	return m.ID
}

// Record is satisfied by any type embedding Model.
type Record interface {
	RecordID() int64
}

// Cond is one WHERE clause with positional arguments.
type Cond struct {
	Query string
	Args  []any
}

func Where(query string, args ...any) Cond {
	return Cond{Query: query, Args: args}
}

type ListOptions struct {
	Where   []Cond
	Order   []string
	Limit   int
	Preload []string
}

// With returns a copy of o with extra conditions appended.
func (o ListOptions) With(conds ...Cond) ListOptions {
	out := o
	out.Where = append(append([]Cond(nil), o.Where...), conds...)
	return out
}

type Repository[T any] interface {
	List(ctx context.Context, opts ListOptions) ([]T, error)
	Get(ctx context.Context, id int64, preload ...string) (*T, error)
	Create(ctx context.Context, rec *T) error
	Update(ctx context.Context, rec *T) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context, conds ...Cond) (int64, error)
}
