package repo

import (
	"context"

	"github.com/BuzzLyutic/todo-console/internal/model"
)

// TaskRepository определяет интерфейс хранилища задач
type TaskRepository interface {
	Create(ctx context.Context, t model.Task) (model.Task, error)
	Get(ctx context.Context, id int64) (model.Task, bool, error)
	List(ctx context.Context) ([]model.Task, error)
	Update(ctx context.Context, id int64, patch model.TaskPatch) (model.Task, error)
	Delete(ctx context.Context, id int64) (bool, error)
	ToggleComplete(ctx context.Context, id int64) (model.Task, error)
}
