package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/tempo/pkg/stats"
	"tableflip.dev/tempo/pkg/task"
)

const maxBarWidth = 40

// CountChart prints a horizontal bar per day showing task counts, with the
// busiest days in red and the freest in green, matching the grid highlights.
func (pp *PrettyPrint) CountChart(title string, buckets []task.DayBucket) {
	pp.Title(title)

	ex := stats.BusiestAndFreest(buckets)
	busiest := keySet(ex.Busiest)
	freest := keySet(ex.Freest)

	for _, b := range buckets {
		printer := color.New(color.FgHiBlue)
		switch {
		case busiest[b.Date]:
			printer = color.New(color.FgHiRed)
		case freest[b.Date]:
			printer = color.New(color.FgHiGreen)
		}
		bar := strings.Repeat("█", scale(float64(b.Count()), float64(ex.MaxCount)))
		_, _ = printer.Printf("%s  %-*s %d\n", b.Date, maxBarWidth, bar, b.Count())
	}
	fmt.Println("")
}

// HoursChart prints the weekly working-hours trend as bars.
func (pp *PrettyPrint) HoursChart(title string, buckets []task.DayBucket) {
	pp.Title(title)

	hours := stats.Hours(buckets)
	max := 0.0
	for _, h := range hours {
		if h > max {
			max = h
		}
	}

	printer := color.New(color.FgHiBlue)
	for i, b := range buckets {
		bar := strings.Repeat("█", scale(hours[i], max))
		_, _ = printer.Printf("%s %s  %-*s %.1fh\n",
			b.Date.Weekday().String()[:3], b.Date, maxBarWidth, bar, hours[i])
	}
	fmt.Println("")
}

// scale maps a value onto the bar width; any nonzero value shows at least one
// block so sparse days stay visible.
func scale(value, max float64) int {
	if max <= 0 || value <= 0 {
		return 0
	}
	n := int(value / max * maxBarWidth)
	if n < 1 {
		n = 1
	}
	if n > maxBarWidth {
		n = maxBarWidth
	}
	return n
}
