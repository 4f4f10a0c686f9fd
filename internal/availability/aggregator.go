package availability

import (
	"slices"
	"strings"

	"roomscheduler/internal/domain"
)

// Aggregate counts, per slot key, how many submissions include it.
//
// In date-only rooms every submitted date counts as is. In timed rooms each
// "YYYY-MM-DD HH:MM" slot is reduced to its date and a participant counts at
// most once per date, however many times they picked on that day. Keys come
// out in ascending order.
func Aggregate(dateOnly bool, submissions []*domain.Participant) *domain.Histogram {
	var slots []string
	if dateOnly {
		for _, p := range submissions {
			slots = append(slots, p.EnableTimes...)
		}
	} else {
		for _, p := range submissions {
			slots = append(slots, distinctDates(p.EnableTimes)...)
		}
		for i, s := range slots {
			slots[i] = SlotDate(s)
		}
	}
	slices.Sort(slots)

	h := domain.NewHistogram()
	for _, s := range slots {
		h.Inc(s)
	}
	return h
}

// SlotDate returns the date part of a slot: everything before the first space.
func SlotDate(slot string) string {
	date, _, _ := strings.Cut(slot, slotTimeSuffix)
	return date
}

func distinctDates(slots []string) []string {
	seen := make(map[string]struct{}, len(slots))
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		d := SlotDate(s)
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	return out
}
