package domain

import (
	"errors"
	"time"
)

var ErrTaskNotFound = errors.New("task not found")

// TaskStatus represents the lifecycle state of a task.
type TaskStatus string

const (
	TaskCreated    TaskStatus = "created"
	TaskInProgress TaskStatus = "in_progress"
	TaskFinished   TaskStatus = "finished"
)

// Valid reports whether the status is one of the enumerated states.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskCreated, TaskInProgress, TaskFinished:
		return true
	}
	return false
}

// Task is a unit of work that always belongs to exactly one project.
type Task struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	Status          TaskStatus `json:"status"`
	ResponsibleName string     `json:"responsible_name"`
	ProjectID       ProjectID  `json:"project_id"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
