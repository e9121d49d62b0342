package console

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/todo-console/internal/model"
	"github.com/BuzzLyutic/todo-console/internal/service"
	"github.com/BuzzLyutic/todo-console/pkg/respond"
)

var (
	errInvalidID  = errors.New("invalid task ID")
	errAlreadyRan = errors.New("console: handler already ran")
)

// TaskHandler одноразовый: Run можно вызвать только один раз,
// т.к. читатель ввода буферизует поток.
type TaskHandler struct {
	service *service.TaskService
	logger  *zap.Logger
	in      io.Reader
	out     io.Writer
	banner  bool

	started bool
	lines   chan string
	done    chan struct{}
}

func NewTaskHandler(srv *service.TaskService, logger *zap.Logger, in io.Reader, out io.Writer) *TaskHandler {
	return &TaskHandler{
		service: srv,
		logger:  logger,
		in:      in,
		out:     out,
		banner:  true,
	}
}

// WithBanner включает или выключает приветствие при старте
func (h *TaskHandler) WithBanner(on bool) *TaskHandler {
	h.banner = on
	return h
}

func (h *TaskHandler) Create(ctx context.Context) error {
	respond.Line(h.out, "\n--- Add Task ---")

	title, err := h.prompt(ctx, "Title: ")
	if err != nil {
		return err
	}
	description, err := h.prompt(ctx, "Description: ")
	if err != nil {
		return err
	}

	task, err := h.service.Create(ctx, title, description)
	if err != nil {
		return err
	}

	respond.Line(h.out, "[+] Task added successfully! [ID: %d]", task.ID)
	return nil
}

func (h *TaskHandler) List(ctx context.Context) error {
	respond.Line(h.out, "\n--- Task List ---")

	tasks, err := h.service.List(ctx)
	if err != nil {
		return err
	}
	respond.Tasks(h.out, tasks)
	return nil
}

func (h *TaskHandler) Update(ctx context.Context) error {
	respond.Line(h.out, "\n--- Update Task ---")

	task, err := h.lookup(ctx, "Enter task ID to update: ")
	if err != nil {
		return err
	}

	respond.Line(h.out, "Current title: %s", task.Title)
	respond.Line(h.out, "Current description: %s", task.Description)

	title, err := h.prompt(ctx, "Enter new title (press Enter to keep): ")
	if err != nil {
		return err
	}
	description, err := h.prompt(ctx, "Enter new description (press Enter to keep): ")
	if err != nil {
		return err
	}

	// Пустой ввод здесь означает "оставить как есть"
	var patch model.TaskPatch
	if title != "" {
		patch.Title = &title
	}
	if description != "" {
		patch.Description = &description
	}

	updated, err := h.service.Update(ctx, task.ID, patch)
	if err != nil {
		return err
	}

	respond.Line(h.out, "\nTask updated successfully!")
	respond.Line(h.out, "Title: %s", updated.Title)
	respond.Line(h.out, "Description: %s", updated.Description)
	return nil
}

func (h *TaskHandler) Delete(ctx context.Context) error {
	respond.Line(h.out, "\n--- Delete Task ---")

	task, err := h.lookup(ctx, "Enter task ID to delete: ")
	if err != nil {
		return err
	}

	respond.Line(h.out, "Task: %s", task.Title)
	ok, err := h.confirm(ctx, "Are you sure you want to delete this task?")
	if err != nil {
		return err
	}
	if !ok {
		respond.Line(h.out, "Deletion cancelled")
		return nil
	}

	deleted, err := h.service.Delete(ctx, task.ID)
	if err != nil {
		return err
	}
	if !deleted {
		respond.Error(h.out, "Failed to delete task")
		return nil
	}

	respond.Line(h.out, "Task deleted successfully!")
	return nil
}

func (h *TaskHandler) MarkComplete(ctx context.Context) error {
	respond.Line(h.out, "\n--- Mark Complete ---")

	task, err := h.lookup(ctx, "Enter task ID: ")
	if err != nil {
		return err
	}

	updated, err := h.service.MarkComplete(ctx, task.ID)
	if err != nil {
		return err
	}

	respond.Line(h.out, "\nStatus changed: %s -> %s", task.Status, updated.Status)
	respond.Line(h.out, "Task updated successfully!")
	return nil
}

// lookup читает ID и возвращает текущее состояние задачи
func (h *TaskHandler) lookup(ctx context.Context, label string) (model.Task, error) {
	raw, err := h.prompt(ctx, label)
	if err != nil {
		return model.Task{}, err
	}

	id, err := strconv.ParseUint(raw, 10, 63)
	if err != nil {
		return model.Task{}, errInvalidID
	}
	return h.service.Get(ctx, int64(id))
}

func (h *TaskHandler) confirm(ctx context.Context, message string) (bool, error) {
	answer, err := h.prompt(ctx, message+" (Y/n): ")
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(answer)
	return answer == "" || answer == "y", nil
}

func (h *TaskHandler) handleErrors(err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		respond.Error(h.out, detail(err, service.ErrValidation))
	case errors.Is(err, service.ErrNotFound):
		respond.Error(h.out, detail(err, service.ErrNotFound))
	case errors.Is(err, errInvalidID):
		respond.Error(h.out, "Invalid task ID")
	default:
		h.logger.Error("unexpected error", zap.Error(err))
		respond.Error(h.out, "An unexpected error occurred: "+err.Error())
	}
}

// detail отрезает префикс sentinel-ошибки и поднимает первую букву:
// "validation error: title cannot be empty" -> "Title cannot be empty"
func detail(err, sentinel error) string {
	msg := strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
	r, size := utf8.DecodeRuneInString(msg)
	if size == 0 {
		return msg
	}
	return string(unicode.ToUpper(r)) + msg[size:]
}

// prompt печатает подсказку и ждет строку ввода (без пробелов по краям)
func (h *TaskHandler) prompt(ctx context.Context, label string) (string, error) {
	if h.lines == nil {
		return "", io.EOF
	}

	respond.Print(h.out, label)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-h.lines:
		if !ok {
			return "", io.EOF
		}
		return strings.TrimSpace(line), nil
	}
}

// startReader читает ввод в отдельной горутине, чтобы ожидание строки
// можно было прервать через ctx. Длина строки не ограничена: слишком длинный
// ввод должен дойти до валидации, а не оборвать сессию.
func (h *TaskHandler) startReader() {
	lines := make(chan string)
	done := make(chan struct{})
	h.lines, h.done = lines, done

	go func() {
		defer close(lines)
		reader := bufio.NewReader(h.in)
		for {
			line, err := reader.ReadString('\n')
			if line != "" {
				select {
				case lines <- strings.TrimRight(line, "\r\n"):
				case <-done:
					return
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					h.logger.Error("failed to read input", zap.Error(err))
				}
				return
			}
		}
	}()
}

func (h *TaskHandler) stopReader() {
	close(h.done)
}
