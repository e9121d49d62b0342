package respond

import (
	"fmt"
	"io"
	"strings"

	"github.com/BuzzLyutic/todo-console/internal/model"
)

const titleWidth = 15

func Print(w io.Writer, s string) {
	fmt.Fprint(w, s)
}

func Line(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, format+"\n", args...)
}

func Error(w io.Writer, message string) {
	fmt.Fprintf(w, "\nError: %s\n", message)
}

// Tasks печатает задачи таблицей: ID | Title | Status | Created
func Tasks(w io.Writer, tasks []model.Task) {
	if len(tasks) == 0 {
		Line(w, "No tasks found")
		return
	}

	Line(w, "\n%-4s | %-*s | %-10s | %s", "ID", titleWidth, "Title", "Status", "Created")
	Line(w, "%s", strings.Repeat("-", 45))

	for _, t := range tasks {
		indicator, text := "[ ]", "Todo"
		if t.IsComplete() {
			indicator, text = "[x]", "Done"
		}
		Line(w, "%-4d | %-*s | %s %-5s | %s",
			t.ID, titleWidth, shorten(t.Title), indicator, text, t.CreatedAt.Format("2006-01-02"))
	}
}

func shorten(title string) string {
	r := []rune(title)
	if len(r) > titleWidth {
		return string(r[:titleWidth-2]) + ".."
	}
	return title
}
