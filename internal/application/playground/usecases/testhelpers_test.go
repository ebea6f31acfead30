package usecases

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"codergrounds/internal/domain/playground"
	"codergrounds/internal/shared/logger"
)

type nopLogger struct{}

func newNopLogger() logger.Interface { return &nopLogger{} }

func (l *nopLogger) Debug(msg string, args ...any)                   {}
func (l *nopLogger) Info(msg string, args ...any)                    {}
func (l *nopLogger) Warn(msg string, args ...any)                    {}
func (l *nopLogger) Error(msg string, args ...any)                   {}
func (l *nopLogger) With(args ...any) logger.Interface               { return l }
func (l *nopLogger) Named(name string) logger.Interface              { return l }
func (l *nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (l *nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (l *nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (l *nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

type fakePlaygroundRepo struct {
	playgrounds map[string]*playground.Playground
}

func newFakePlaygroundRepo() *fakePlaygroundRepo {
	return &fakePlaygroundRepo{playgrounds: make(map[string]*playground.Playground)}
}

func (r *fakePlaygroundRepo) Create(ctx context.Context, pg *playground.Playground) error {
	if pg.ID == "" {
		pg.ID = uuid.NewString()
	}
	pg.CreatedAt = time.Now().UTC()
	pg.UpdatedAt = pg.CreatedAt
	r.playgrounds[pg.ID] = pg
	return nil
}

func (r *fakePlaygroundRepo) GetByID(ctx context.Context, id string) (*playground.Playground, error) {
	return r.playgrounds[id], nil
}

func (r *fakePlaygroundRepo) List(ctx context.Context, filter playground.ListFilter) ([]*playground.Playground, int64, error) {
	var all []*playground.Playground
	for _, pg := range r.playgrounds {
		if filter.UserID != "" && pg.UserID != filter.UserID {
			continue
		}
		all = append(all, pg)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })

	total := int64(len(all))
	start := (filter.Page - 1) * filter.PageSize
	if start >= len(all) {
		return nil, total, nil
	}
	end := start + filter.PageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (r *fakePlaygroundRepo) Update(ctx context.Context, pg *playground.Playground) error {
	pg.UpdatedAt = time.Now().UTC()
	r.playgrounds[pg.ID] = pg
	return nil
}

func (r *fakePlaygroundRepo) Delete(ctx context.Context, id string) error {
	delete(r.playgrounds, id)
	return nil
}

type fakeFileRepo struct {
	files map[string]*playground.File
}

func newFakeFileRepo() *fakeFileRepo {
	return &fakeFileRepo{files: make(map[string]*playground.File)}
}

func (r *fakeFileRepo) Create(ctx context.Context, f *playground.File) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	f.CreatedAt = time.Now().UTC()
	f.UpdatedAt = f.CreatedAt
	r.files[f.ID] = f
	return nil
}

func (r *fakeFileRepo) GetByID(ctx context.Context, id string) (*playground.File, error) {
	return r.files[id], nil
}

func (r *fakeFileRepo) ListByPlayground(ctx context.Context, playgroundID string) ([]*playground.File, error) {
	var out []*playground.File
	for _, f := range r.files {
		if f.PlaygroundID == playgroundID {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (r *fakeFileRepo) MaxOrder(ctx context.Context, playgroundID string) (int, error) {
	max := 0
	for _, f := range r.files {
		if f.PlaygroundID == playgroundID && f.Order > max {
			max = f.Order
		}
	}
	return max, nil
}

func (r *fakeFileRepo) Update(ctx context.Context, f *playground.File) error {
	f.UpdatedAt = time.Now().UTC()
	r.files[f.ID] = f
	return nil
}

func (r *fakeFileRepo) Delete(ctx context.Context, id string) error {
	delete(r.files, id)
	return nil
}

type fakeExecutionRepo struct {
	executions map[string]*playground.Execution
}

func newFakeExecutionRepo() *fakeExecutionRepo {
	return &fakeExecutionRepo{executions: make(map[string]*playground.Execution)}
}

func (r *fakeExecutionRepo) Create(ctx context.Context, e *playground.Execution) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	e.CreatedAt = time.Now().UTC()
	e.UpdatedAt = e.CreatedAt
	r.executions[e.ID] = e
	return nil
}

func (r *fakeExecutionRepo) GetByID(ctx context.Context, id string) (*playground.Execution, error) {
	return r.executions[id], nil
}

func (r *fakeExecutionRepo) ListByPlayground(ctx context.Context, playgroundID string, limit int) ([]*playground.Execution, error) {
	var out []*playground.Execution
	for _, e := range r.executions {
		if e.PlaygroundID == playgroundID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeExecutionRepo) Update(ctx context.Context, e *playground.Execution) error {
	e.UpdatedAt = time.Now().UTC()
	r.executions[e.ID] = e
	return nil
}

func seedPlayground(repo *fakePlaygroundRepo, userID string, visibility playground.Visibility) *playground.Playground {
	pg := &playground.Playground{
		ID:         uuid.NewString(),
		UserID:     userID,
		Name:       "scratchpad",
		Visibility: visibility,
		CreatedAt:  time.Now().UTC(),
	}
	repo.playgrounds[pg.ID] = pg
	return pg
}
