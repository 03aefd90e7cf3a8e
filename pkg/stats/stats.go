// Package stats derives busiest/freest-day and aggregate-hour figures from
// day buckets over a month or week range.
package stats

import (
	"tableflip.dev/tempo/pkg/datekey"
	"tableflip.dev/tempo/pkg/task"
)

// Extremes reports the days carrying the most and fewest tasks over a range.
// Busiest and Freest hold every tied day, not a single representative.
type Extremes struct {
	Busiest  []datekey.Key
	Freest   []datekey.Key
	MaxCount int
	MinCount int
}

// MonthRange returns the real days of ref's month (28-31 keys), without the
// padding cells the month grid shows.
func MonthRange(ref datekey.Key) []datekey.Key {
	days := datekey.DaysInMonth(ref.Year(), ref.Month())
	keys := make([]datekey.Key, days)
	first := ref.MonthStart()
	for i := range keys {
		keys[i] = first.AddDays(i)
	}
	return keys
}

// WeekRange returns the 7 days of the week containing ref, Sunday first.
func WeekRange(ref datekey.Key) []datekey.Key {
	start := ref.WeekStart()
	keys := make([]datekey.Key, 7)
	for i := range keys {
		keys[i] = start.AddDays(i)
	}
	return keys
}

// BusiestAndFreest finds the extreme days of the given buckets. A day is
// busiest only when the maximum count is positive; a day is freest only when
// its count is strictly below the maximum, so a uniform range yields no
// freest day even when every count is nonzero.
func BusiestAndFreest(buckets []task.DayBucket) Extremes {
	ex := Extremes{}
	if len(buckets) == 0 {
		return ex
	}

	ex.MaxCount = buckets[0].Count()
	ex.MinCount = buckets[0].Count()
	for _, b := range buckets[1:] {
		if c := b.Count(); c > ex.MaxCount {
			ex.MaxCount = c
		} else if c < ex.MinCount {
			ex.MinCount = c
		}
	}

	for _, b := range buckets {
		c := b.Count()
		if c == ex.MaxCount && ex.MaxCount > 0 {
			ex.Busiest = append(ex.Busiest, b.Date)
		}
		if c == ex.MinCount && c < ex.MaxCount {
			ex.Freest = append(ex.Freest, b.Date)
		}
	}
	return ex
}

// TotalHours sums the bucket totals over the range.
func TotalHours(buckets []task.DayBucket) float64 {
	total := 0.0
	for _, b := range buckets {
		total += b.TotalHours
	}
	return total
}

// Counts extracts the per-day task counts, aligned to the buckets.
func Counts(buckets []task.DayBucket) []int {
	counts := make([]int, len(buckets))
	for i, b := range buckets {
		counts[i] = b.Count()
	}
	return counts
}

// Hours extracts the per-day total hours, aligned to the buckets.
func Hours(buckets []task.DayBucket) []float64 {
	hours := make([]float64, len(buckets))
	for i, b := range buckets {
		hours[i] = b.TotalHours
	}
	return hours
}
