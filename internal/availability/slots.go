package availability

import (
	"fmt"
	"regexp"
	"time"

	"roomscheduler/internal/domain"
)

const (
	CodeSlotFormat = "slot_format"

	slotLayout = DateLayout + slotTimeSuffix + TimeLayout
)

// Shapes are fixed-width so that string order matches chronological order.
var (
	dateRegex     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	clockRegex    = regexp.MustCompile(`^\d{2}:\d{2}$`)
	timedRegex    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}$`)
	layoutPattern = map[string]*regexp.Regexp{
		DateLayout: dateRegex,
		TimeLayout: clockRegex,
		slotLayout: timedRegex,
	}
)

// IsDate reports whether s is a real calendar date written as YYYY-MM-DD.
func IsDate(s string) bool { return matches(DateLayout, s) }

// IsClockTime reports whether s is a real time of day written as zero-padded HH:MM.
func IsClockTime(s string) bool { return matches(TimeLayout, s) }

func matches(layout, s string) bool {
	if !layoutPattern[layout].MatchString(s) {
		return false
	}
	_, err := time.Parse(layout, s)
	return err == nil
}

// ValidateSlots checks that every slot has the shape the room mode expects:
// a bare date in date-only rooms, "date time" otherwise.
func ValidateSlots(dateOnly bool, slots []string) error {
	layout := slotLayout
	if dateOnly {
		layout = DateLayout
	}
	ve := &domain.ValidationError{}
	for _, s := range slots {
		if !matches(layout, s) {
			ve.AddWithData(CodeSlotFormat,
				fmt.Sprintf("invalid slot %q: expected %s", s, layout),
				map[string]any{"Slot": s, "Layout": layout})
		}
	}
	return ve.Err()
}
