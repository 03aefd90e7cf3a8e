package api

import (
	"fmt"

	"tableflip.dev/tempo/pkg/datekey"
	"tableflip.dev/tempo/pkg/task"
)

// User identifies the authenticated account.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Session is the result of a successful login or registration.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Error is a failure reported by the backend, carrying its human-readable
// message.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("api: request failed (status %d)", e.Status)
}

// envelope is the backend's uniform response shape.
type envelope struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Token   string     `json:"token"`
	User    *User      `json:"user"`
	Task    *wireTask  `json:"task"`
	Tasks   []wireTask `json:"tasks"`
}

// wireTask tolerates both the camelCase and snake_case field names the
// backend has emitted over time.
type wireTask struct {
	ID           string `json:"id"`
	LegacyID     string `json:"_id"`
	Title        string `json:"title"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	StartTimeAlt string `json:"start_time"`
	EndTime      string `json:"endTime"`
	EndTimeAlt   string `json:"end_time"`
	Desc         string `json:"desc"`
	UserID       string `json:"userId"`
	UserIDAlt    string `json:"user_id"`
}

func (w wireTask) toTask() (task.Task, error) {
	date, err := datekey.Parse(w.Date)
	if err != nil {
		return task.Task{}, err
	}
	return task.Task{
		ID:      coalesce(w.ID, w.LegacyID),
		Title:   w.Title,
		Date:    date,
		Start:   coalesce(w.StartTime, w.StartTimeAlt),
		End:     coalesce(w.EndTime, w.EndTimeAlt),
		Desc:    w.Desc,
		OwnerID: coalesce(w.UserID, w.UserIDAlt),
	}, nil
}

func coalesce(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
