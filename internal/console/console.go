package console

import (
	"context"
	"errors"
	"io"
	"strconv"

	"github.com/BuzzLyutic/todo-console/pkg/respond"
)

const (
	choiceAdd = iota + 1
	choiceView
	choiceUpdate
	choiceDelete
	choiceComplete
	choiceExit
)

var menuItems = []string{
	"Add Task",
	"View Tasks",
	"Update Task",
	"Delete Task",
	"Mark Complete",
	"Exit",
}

// Run крутит цикл меню до выбора Exit, конца ввода или отмены ctx.
// Ошибки валидации и "не найдено" выводятся пользователю и цикл продолжается.
func (h *TaskHandler) Run(ctx context.Context) error {
	if h.started {
		return errAlreadyRan
	}
	h.started = true

	h.startReader()
	defer h.stopReader()

	if h.banner {
		respond.Line(h.out, "Welcome to Todo Console App!")
		respond.Line(h.out, "A simple command-line todo list manager.")
	}

	for {
		choice, err := h.menu(ctx)
		if err != nil {
			return h.finish(err)
		}
		if choice == choiceExit {
			return h.finish(nil)
		}

		if err := h.dispatch(ctx, choice); err != nil {
			if stopped(err) {
				return h.finish(err)
			}
			h.handleErrors(err)
		}
	}
}

func (h *TaskHandler) dispatch(ctx context.Context, choice int) error {
	switch choice {
	case choiceAdd:
		return h.Create(ctx)
	case choiceView:
		return h.List(ctx)
	case choiceUpdate:
		return h.Update(ctx)
	case choiceDelete:
		return h.Delete(ctx)
	case choiceComplete:
		return h.MarkComplete(ctx)
	}
	return nil
}

func (h *TaskHandler) menu(ctx context.Context) (int, error) {
	respond.Line(h.out, "\n=== TODO APP ===")
	for i, item := range menuItems {
		respond.Line(h.out, "%d. %s", i+1, item)
	}

	for {
		raw, err := h.prompt(ctx, "Enter choice: ")
		if err != nil {
			return 0, err
		}
		if n, err := strconv.Atoi(raw); err == nil && n >= choiceAdd && n <= choiceExit {
			return n, nil
		}
		respond.Line(h.out, "Please enter a number between 1 and %d", choiceExit)
	}
}

// finish завершает сессию: конец ввода и отмена считаются штатным выходом
func (h *TaskHandler) finish(err error) error {
	if err != nil && !stopped(err) {
		return err
	}
	respond.Line(h.out, "\nGoodbye!")
	return nil
}

func stopped(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, context.Canceled)
}
