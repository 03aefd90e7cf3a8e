package task

import (
	"sort"

	"tableflip.dev/tempo/pkg/datekey"
)

// DayBucket is the derived group of tasks sharing one calendar day. Buckets
// are recomputed from a snapshot, never persisted.
type DayBucket struct {
	Date       datekey.Key
	Tasks      []Task
	TotalHours float64
}

// Count returns the number of tasks in the bucket.
func (b DayBucket) Count() int { return len(b.Tasks) }

// ByDate groups a task snapshot by exact date key. Within a group, tasks are
// ordered by start time ascending; the fixed HH:MM form makes the string
// comparison correct.
func ByDate(tasks []Task) map[datekey.Key][]Task {
	index := make(map[datekey.Key][]Task, len(tasks))
	for _, t := range tasks {
		index[t.Date] = append(index[t.Date], t)
	}
	for key := range index {
		group := index[key]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Start < group[j].Start
		})
	}
	return index
}

// BucketsFor produces one DayBucket per requested key, aligned to the keys
// sequence. Days with no tasks get an empty bucket rather than being skipped.
func BucketsFor(tasks []Task, keys []datekey.Key) []DayBucket {
	index := ByDate(tasks)
	buckets := make([]DayBucket, len(keys))
	for i, key := range keys {
		group := index[key]
		total := 0.0
		for _, t := range group {
			total += t.Duration()
		}
		buckets[i] = DayBucket{Date: key, Tasks: group, TotalHours: total}
	}
	return buckets
}
