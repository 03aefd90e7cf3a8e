package stats

import (
	"math"
	"testing"

	"tableflip.dev/tempo/pkg/datekey"
	"tableflip.dev/tempo/pkg/task"
)

func bucketsWithCounts(start string, counts []int) []task.DayBucket {
	key := datekey.MustParse(start)
	buckets := make([]task.DayBucket, len(counts))
	for i, c := range counts {
		b := task.DayBucket{Date: key.AddDays(i)}
		for j := 0; j < c; j++ {
			b.Tasks = append(b.Tasks, task.Task{Date: b.Date, Start: "09:00", End: "10:00"})
		}
		buckets[i] = b
	}
	return buckets
}

func TestBusiestAndFreestUniformWeek(t *testing.T) {
	ex := BusiestAndFreest(bucketsWithCounts("2026-01-11", []int{3, 3, 3, 3, 3, 3, 3}))
	if len(ex.Busiest) != 7 {
		t.Fatalf("uniform week: got %d busiest days, want all 7", len(ex.Busiest))
	}
	if len(ex.Freest) != 0 {
		t.Fatalf("uniform week: expected no freest day, got %d", len(ex.Freest))
	}
	if ex.MaxCount != 3 || ex.MinCount != 3 {
		t.Fatalf("counts: got max %d min %d", ex.MaxCount, ex.MinCount)
	}
}

func TestBusiestAndFreestTies(t *testing.T) {
	buckets := bucketsWithCounts("2026-01-11", []int{5, 2, 2, 0, 1, 5, 3})
	ex := BusiestAndFreest(buckets)

	if ex.MaxCount != 5 || ex.MinCount != 0 {
		t.Fatalf("counts: got max %d min %d", ex.MaxCount, ex.MinCount)
	}
	if len(ex.Busiest) != 2 {
		t.Fatalf("got %d busiest days, want 2", len(ex.Busiest))
	}
	if ex.Busiest[0].String() != "2026-01-11" || ex.Busiest[1].String() != "2026-01-16" {
		t.Fatalf("unexpected busiest days: %v", ex.Busiest)
	}
	if len(ex.Freest) != 1 || ex.Freest[0].String() != "2026-01-14" {
		t.Fatalf("unexpected freest days: %v", ex.Freest)
	}
}

func TestBusiestAndFreestAllEmpty(t *testing.T) {
	ex := BusiestAndFreest(bucketsWithCounts("2026-01-11", []int{0, 0, 0}))
	if len(ex.Busiest) != 0 {
		t.Fatalf("all-empty range should have no busiest day, got %v", ex.Busiest)
	}
	if len(ex.Freest) != 0 {
		t.Fatalf("all-empty range should have no freest day, got %v", ex.Freest)
	}
}

func TestBusiestAndFreestEmptyInput(t *testing.T) {
	ex := BusiestAndFreest(nil)
	if len(ex.Busiest) != 0 || len(ex.Freest) != 0 || ex.MaxCount != 0 || ex.MinCount != 0 {
		t.Fatalf("empty input: got %+v", ex)
	}
}

func TestMonthRange(t *testing.T) {
	keys := MonthRange(datekey.MustParse("2026-02-15"))
	if len(keys) != 28 {
		t.Fatalf("Feb 2026: got %d days, want 28", len(keys))
	}
	if keys[0].String() != "2026-02-01" || keys[27].String() != "2026-02-28" {
		t.Fatalf("range bounds: %s .. %s", keys[0], keys[27])
	}

	if got := len(MonthRange(datekey.MustParse("2024-02-01"))); got != 29 {
		t.Fatalf("Feb 2024: got %d days, want 29", got)
	}
	if got := len(MonthRange(datekey.MustParse("2026-01-31"))); got != 31 {
		t.Fatalf("Jan 2026: got %d days, want 31", got)
	}
}

func TestWeekRange(t *testing.T) {
	keys := WeekRange(datekey.MustParse("2026-01-15"))
	if len(keys) != 7 {
		t.Fatalf("got %d days, want 7", len(keys))
	}
	if keys[0].String() != "2026-01-11" || keys[6].String() != "2026-01-17" {
		t.Fatalf("range bounds: %s .. %s", keys[0], keys[6])
	}
}

func TestTotalHours(t *testing.T) {
	day := datekey.MustParse("2026-01-11")
	buckets := []task.DayBucket{
		{Date: day, TotalHours: 1.5},
		{Date: day.AddDays(1), TotalHours: 0},
		{Date: day.AddDays(2), TotalHours: 2.25},
	}
	if got := TotalHours(buckets); math.Abs(got-3.75) > 1e-9 {
		t.Fatalf("got %f, want 3.75", got)
	}
}
