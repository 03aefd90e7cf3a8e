package task

import (
	"errors"
	"math"
	"testing"

	"tableflip.dev/tempo/pkg/datekey"
)

func TestDraftValidate(t *testing.T) {
	valid := Draft{Title: "standup", Date: "2026-01-05", Start: "09:00", End: "09:30"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid draft rejected: %v", err)
	}

	cases := []struct {
		name  string
		draft Draft
		want  error
	}{
		{"missing title", Draft{Date: "2026-01-05", Start: "09:00", End: "10:00"}, ErrMissingField},
		{"blank title", Draft{Title: "   ", Date: "2026-01-05", Start: "09:00", End: "10:00"}, ErrMissingField},
		{"missing date", Draft{Title: "x", Start: "09:00", End: "10:00"}, ErrMissingField},
		{"bad date", Draft{Title: "x", Date: "2026-02-30", Start: "09:00", End: "10:00"}, datekey.ErrInvalidDate},
		{"missing start", Draft{Title: "x", Date: "2026-01-05", End: "10:00"}, ErrMissingField},
		{"bad time", Draft{Title: "x", Date: "2026-01-05", Start: "9:00", End: "10:00"}, ErrInvalidTime},
		{"hour 24", Draft{Title: "x", Date: "2026-01-05", Start: "24:00", End: "25:00"}, ErrInvalidTime},
		{"equal times", Draft{Title: "x", Date: "2026-01-05", Start: "10:00", End: "10:00"}, ErrTimeOrder},
		{"cross midnight", Draft{Title: "x", Date: "2026-01-05", Start: "23:00", End: "01:00"}, ErrTimeOrder},
	}
	for _, tc := range cases {
		if err := tc.draft.Validate(); !errors.Is(err, tc.want) {
			t.Fatalf("%s: got %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestDuration(t *testing.T) {
	cases := []struct {
		start, end string
		want       float64
	}{
		{"09:00", "10:30", 1.5},
		{"08:00", "08:30", 0.5},
		{"00:00", "23:59", 23.983333},
		{"13:15", "14:00", 0.75},
	}
	for _, tc := range cases {
		got := Task{Start: tc.start, End: tc.end}.Duration()
		if math.Abs(got-tc.want) > 1e-5 {
			t.Fatalf("Duration(%s-%s): got %f, want %f", tc.start, tc.end, got, tc.want)
		}
	}
}

func TestByDateGroupsAndOrders(t *testing.T) {
	day := datekey.MustParse("2026-01-05")
	other := datekey.MustParse("2026-01-06")
	tasks := []Task{
		{ID: "a", Title: "late", Date: day, Start: "09:00", End: "10:30"},
		{ID: "b", Title: "early", Date: day, Start: "08:00", End: "08:30"},
		{ID: "c", Title: "elsewhere", Date: other, Start: "12:00", End: "13:00"},
	}

	index := ByDate(tasks)
	if len(index) != 2 {
		t.Fatalf("got %d groups, want 2", len(index))
	}
	group := index[day]
	if len(group) != 2 {
		t.Fatalf("got %d tasks on %s, want 2", len(group), day)
	}
	if group[0].ID != "b" || group[1].ID != "a" {
		t.Fatalf("group not ordered by start time: %s, %s", group[0].ID, group[1].ID)
	}
}

func TestBucketsForAlignmentAndTotals(t *testing.T) {
	day := datekey.MustParse("2026-01-05")
	keys := []datekey.Key{
		datekey.MustParse("2026-01-04"),
		day,
		datekey.MustParse("2026-01-06"),
	}
	tasks := []Task{
		{ID: "a", Date: day, Start: "09:00", End: "10:30"},
		{ID: "b", Date: day, Start: "08:00", End: "08:30"},
	}

	buckets := BucketsFor(tasks, keys)
	if len(buckets) != len(keys) {
		t.Fatalf("got %d buckets, want %d", len(buckets), len(keys))
	}
	for i, b := range buckets {
		if !b.Date.Equal(keys[i]) {
			t.Fatalf("bucket %d not aligned: got %s, want %s", i, b.Date, keys[i])
		}
	}
	if buckets[0].Count() != 0 || buckets[0].TotalHours != 0 {
		t.Fatalf("empty day has tasks: %+v", buckets[0])
	}
	if buckets[1].Count() != 2 {
		t.Fatalf("got %d tasks, want 2", buckets[1].Count())
	}
	if buckets[1].Tasks[0].Start != "08:00" {
		t.Fatalf("bucket tasks not ordered: first starts %s", buckets[1].Tasks[0].Start)
	}
	if math.Abs(buckets[1].TotalHours-2.0) > 1e-9 {
		t.Fatalf("total hours: got %f, want 2.0", buckets[1].TotalHours)
	}
}
