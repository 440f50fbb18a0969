package record

import (
	"context"
	"errors"
	"log/slog"

	"github.com/frahmantamala/hr-portal/internal"
)

// Service wraps a Repository with the logging every record kind shares.
type Service[T Record] struct {
	kind   string
	repo   Repository[T]
	logger *slog.Logger
}

func NewService[T Record](kind string, repo Repository[T], logger *slog.Logger) *Service[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service[T]{kind: kind, repo: repo, logger: logger.With("kind", kind)}
}

func (s *Service[T]) Kind() string {
	return s.kind
}

func (s *Service[T]) Repository() Repository[T] {
	return s.repo
}

func (s *Service[T]) List(ctx context.Context, opts ListOptions) ([]T, error) {
	recs, err := s.repo.List(ctx, opts)
	if err != nil {
		s.logger.Error("failed to list records", "error", err)
		return nil, err
	}
	return recs, nil
}

func (s *Service[T]) Get(ctx context.Context, id int64, preload ...string) (*T, error) {
	rec, err := s.repo.Get(ctx, id, preload...)
	if err != nil {
		s.logFailure("failed to get record", id, err)
		return nil, err
	}
	return rec, nil
}

func (s *Service[T]) Create(ctx context.Context, rec *T) error {
	if err := s.repo.Create(ctx, rec); err != nil {
		s.logFailure("failed to create record", 0, err)
		return err
	}
	s.logger.Info("record created", "id", (*rec).RecordID())
	return nil
}

func (s *Service[T]) Update(ctx context.Context, rec *T) error {
	id := (*rec).RecordID()
	if err := s.repo.Update(ctx, rec); err != nil {
		s.logFailure("failed to update record", id, err)
		return err
	}
	s.logger.Info("record updated", "id", id)
	return nil
}

func (s *Service[T]) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logFailure("failed to delete record", id, err)
		return err
	}
	s.logger.Info("record deleted", "id", id)
	return nil
}

func (s *Service[T]) Count(ctx context.Context, conds ...Cond) (int64, error) {
	return s.repo.Count(ctx, conds...)
}

// logFailure logs client errors at warn and everything else at error.
func (s *Service[T]) logFailure(msg string, id int64, err error) {
	var appErr *internal.AppError
	if errors.As(err, &appErr) && appErr.StatusCode < 500 {
		s.logger.Warn(msg, "id", id, "error", err)
		return
	}
	s.logger.Error(msg, "id", id, "error", err)
}
