package planner

import (
	"sort"

	"dayplanner/models"
)

// ComputeFreeSlots returns the chronological, disjoint gaps between obligations inside
// window. The obligations are expected to belong to a single day already.
func ComputeFreeSlots(obligations []models.Obligation, window Window) ([]models.FreeInterval, error) {
	spans, err := freeSpans(obligations, window)
	if err != nil {
		return nil, err
	}
	out := make([]models.FreeInterval, 0, len(spans))
	for _, s := range spans {
		out = append(out, s.interval())
	}
	return out, nil
}

func freeSpans(obligations []models.Obligation, window Window) ([]span, error) {
	if err := window.validate(); err != nil {
		return nil, err
	}
	win := window.span()

	busy := make([]span, 0, len(obligations))
	for _, o := range obligations {
		busy = append(busy, occupy(o, win)...)
	}
	sort.SliceStable(busy, func(i, j int) bool {
		return busy[i].start < busy[j].start
	})

	var free []span
	cursor := win.start
	for _, b := range busy {
		if b.start > cursor {
			end := min(b.start, win.end)
			if end > cursor {
				free = append(free, span{cursor, end})
			}
		}
		cursor = max(cursor, b.end)
	}
	if cursor < win.end {
		free = append(free, span{cursor, win.end})
	}
	return free, nil
}

func totalMinutes(spans []span) int {
	total := 0
	for _, s := range spans {
		total += s.length()
	}
	return total
}
