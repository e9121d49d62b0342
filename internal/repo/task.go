package repo

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/BuzzLyutic/todo-console/internal/model"
)

var (
	ErrorNotFound = errors.New("not found")
)

var _ TaskRepository = (*MemoryRepo)(nil)

type MemoryRepo struct { // Хранилище задач в памяти процесса
	mu     sync.Mutex
	tasks  map[int64]model.Task
	nextID int64
	now    func() time.Time
}

type Option func(*MemoryRepo)

// WithClock подменяет источник времени (для тестов)
func WithClock(now func() time.Time) Option {
	return func(r *MemoryRepo) {
		r.now = now
	}
}

func NewMemoryRepo(opts ...Option) *MemoryRepo { // Конструктор
	r := &MemoryRepo{
		tasks:  make(map[int64]model.Task),
		nextID: 1,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *MemoryRepo) Create(ctx context.Context, t model.Task) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// ID и метки времени назначает только хранилище
	now := r.now()
	t.ID = r.nextID
	r.nextID++
	t.CreatedAt = now
	t.UpdatedAt = now

	r.tasks[t.ID] = t
	return t, nil
}

func (r *MemoryRepo) Get(ctx context.Context, id int64) (model.Task, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[id]
	return t, ok, nil
}

func (r *MemoryRepo) List(ctx context.Context) ([]model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks := make([]model.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		tasks = append(tasks, t)
	}

	// Новые сверху; при равном created_at сохраняется порядок вставки
	slices.SortFunc(tasks, func(a, b model.Task) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return tasks, nil
}

func (r *MemoryRepo) Update(ctx context.Context, id int64, patch model.TaskPatch) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[id]
	if !ok {
		return model.Task{}, notFound(id)
	}

	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	t.UpdatedAt = r.now()

	r.tasks[id] = t
	return t, nil
}

func (r *MemoryRepo) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; !ok {
		return false, nil
	}
	delete(r.tasks, id)
	return true, nil
}

func (r *MemoryRepo) ToggleComplete(ctx context.Context, id int64) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[id]
	if !ok {
		return model.Task{}, notFound(id)
	}

	now := r.now()
	if t.Status == model.StatusComplete {
		t.Status = model.StatusPending
		t.CompletedAt = nil
	} else {
		t.Status = model.StatusComplete
		completed := now
		t.CompletedAt = &completed
	}
	t.UpdatedAt = now

	r.tasks[id] = t
	return t, nil
}

func notFound(id int64) error {
	return fmt.Errorf("task %d: %w", id, ErrorNotFound)
}
