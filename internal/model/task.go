package model

import "time"

const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 500
)

type Status string

const (
	StatusPending  Status = "Pending"
	StatusComplete Status = "Complete"
)

type Task struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      Status     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// IsComplete - задача в статусе Complete
func (t Task) IsComplete() bool {
	return t.Status == StatusComplete
}

// TaskPatch - поля частичного обновления. nil означает "оставить как есть",
// пустая строка - реальное новое значение.
type TaskPatch struct {
	Title       *string
	Description *string
}

// Empty - в патче нет ни одного поля для изменения
func (p TaskPatch) Empty() bool {
	return p.Title == nil && p.Description == nil
}
