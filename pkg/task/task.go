// Package task defines the time-boxed task record and the per-day index the
// calendar views and statistics are computed from.
package task

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"tableflip.dev/tempo/pkg/datekey"
)

// Validation failures raised at the boundary that constructs tasks. The index
// and duration math assume these were enforced and do not re-check.
var (
	ErrMissingField = errors.New("task: missing required field")
	ErrInvalidTime  = errors.New("task: time must be HH:MM")
	ErrTimeOrder    = errors.New("task: start time must be before end time")
)

var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// Task is a snapshot record owned by the backend. The client only reads it.
type Task struct {
	ID      string      `json:"id"`
	Title   string      `json:"title"`
	Date    datekey.Key `json:"date"`
	Start   string      `json:"startTime"`
	End     string      `json:"endTime"`
	Desc    string      `json:"desc,omitempty"`
	OwnerID string      `json:"userId,omitempty"`
}

// Draft is user input for a task to be created. Validate before sending.
type Draft struct {
	Title string
	Date  string
	Start string
	End   string
	Desc  string
}

// Validate checks a draft the way the backend will: required fields, HH:MM
// times, a canonical date, and start strictly before end. Cross-midnight
// tasks are rejected here, not corrected downstream.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("%w: title", ErrMissingField)
	}
	if d.Date == "" {
		return fmt.Errorf("%w: date", ErrMissingField)
	}
	if _, err := datekey.Parse(d.Date); err != nil {
		return err
	}
	for _, tm := range []string{d.Start, d.End} {
		if tm == "" {
			return fmt.Errorf("%w: time", ErrMissingField)
		}
		if !timePattern.MatchString(tm) {
			return fmt.Errorf("%w: %q", ErrInvalidTime, tm)
		}
	}
	// Fixed-width HH:MM makes string comparison a valid time comparison.
	if d.Start >= d.End {
		return fmt.Errorf("%w: %s >= %s", ErrTimeOrder, d.Start, d.End)
	}
	return nil
}

// Duration returns the task length in hours. Start < End is enforced at
// creation, so the result is non-negative for any valid task.
func (t Task) Duration() float64 {
	return hoursOf(t.End) - hoursOf(t.Start)
}

func hoursOf(hhmm string) float64 {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	return float64(h) + float64(m)/60
}
