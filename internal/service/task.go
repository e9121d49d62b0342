package service

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/todo-console/internal/model"
	"github.com/BuzzLyutic/todo-console/internal/repo"
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
)

type TaskService struct {
	repo   repo.TaskRepository
	logger *zap.Logger
}

func NewTaskService(repo repo.TaskRepository, logger *zap.Logger) *TaskService {
	return &TaskService{
		repo:   repo,
		logger: logger,
	}
}

func (s *TaskService) Create(ctx context.Context, title, description string) (model.Task, error) {
	if err := validateTitle(title); err != nil { // Валидация до обращения к хранилищу
		return model.Task{}, err
	}
	if err := validateDescription(description); err != nil {
		return model.Task{}, err
	}

	task, err := s.repo.Create(ctx, model.Task{
		Title:       title,
		Description: description,
		Status:      model.StatusPending,
	})
	if err != nil {
		return model.Task{}, err
	}

	s.logger.Debug("task created", zap.Int64("task_id", task.ID))
	return task, nil
}

func (s *TaskService) Get(ctx context.Context, id int64) (model.Task, error) {
	task, ok, err := s.repo.Get(ctx, id)
	if err != nil {
		return model.Task{}, err
	}
	if !ok {
		return model.Task{}, notFound(id)
	}
	return task, nil
}

func (s *TaskService) List(ctx context.Context) ([]model.Task, error) {
	return s.repo.List(ctx)
}

func (s *TaskService) Update(ctx context.Context, id int64, patch model.TaskPatch) (model.Task, error) {
	if patch.Empty() {
		return model.Task{}, fmt.Errorf("%w: at least one field must be updated", ErrValidation)
	}
	if patch.Title != nil {
		if err := validateTitle(*patch.Title); err != nil {
			return model.Task{}, err
		}
	}
	if patch.Description != nil {
		if err := validateDescription(*patch.Description); err != nil {
			return model.Task{}, err
		}
	}

	task, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return model.Task{}, mapError(id, err)
	}

	s.logger.Debug("task updated", zap.Int64("task_id", id))
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.logger.Debug("task deleted", zap.Int64("task_id", id))
	}
	return deleted, nil
}

// MarkComplete переключает статус задачи: Pending <-> Complete.
// Повторный вызов возвращает задачу в Pending.
func (s *TaskService) MarkComplete(ctx context.Context, id int64) (model.Task, error) {
	task, err := s.repo.ToggleComplete(ctx, id)
	if err != nil {
		return model.Task{}, mapError(id, err)
	}

	s.logger.Debug("task status toggled",
		zap.Int64("task_id", id),
		zap.String("status", string(task.Status)),
	)
	return task, nil
}

// mapError отвязывает ошибки хранилища от ошибок сервиса
func mapError(id int64, err error) error {
	if errors.Is(err, repo.ErrorNotFound) {
		return notFound(id)
	}
	return err
}

func notFound(id int64) error {
	return fmt.Errorf("%w: task %d not found", ErrNotFound, id)
}

func validateTitle(title string) error {
	if title == "" {
		return fmt.Errorf("%w: title cannot be empty", ErrValidation)
	}
	if utf8.RuneCountInString(title) > model.MaxTitleLength {
		return fmt.Errorf("%w: title must be %d characters or less", ErrValidation, model.MaxTitleLength)
	}
	return nil
}

func validateDescription(description string) error {
	if utf8.RuneCountInString(description) > model.MaxDescriptionLength {
		return fmt.Errorf("%w: description must be %d characters or less", ErrValidation, model.MaxDescriptionLength)
	}
	return nil
}
