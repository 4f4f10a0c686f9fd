// Package availability holds the scheduling core: the rules a candidate date
// range must satisfy before a room is created, and the reduction of
// participants' submitted slots into a per-date histogram.
package availability

import (
	"slices"
	"time"

	"roomscheduler/internal/domain"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"

	MinDates       = 1
	MaxDates       = 60
	HorizonMonths  = 6
	slotTimeSuffix = " "
)

// Violation codes, also used as translation message IDs.
const (
	CodeDatesLength     = "dates_length"
	CodeDatesUnique     = "dates_unique"
	CodeDatesSorted     = "dates_sorted"
	CodeFirstDatePast   = "first_date_past"
	CodeDatesHorizon    = "dates_horizon"
	CodeTimesRequired   = "times_required"
	CodeTimesNotAllowed = "times_not_allowed"
	CodeTimeOrder       = "time_order"
)

// RangeRequest is a proposed scheduling window. Dates must arrive exactly as
// the caller sent them: no reordering, no de-duplication.
type RangeRequest struct {
	Dates     []string
	DateOnly  bool
	StartTime *string
	EndTime   *string
}

// RangeValidator checks a RangeRequest against the room creation rules.
// It is stateless apart from its clock and safe for concurrent use.
type RangeValidator struct {
	clock Clock
}

// NewRangeValidator returns a validator reading "now" from clock.
// A nil clock means the system clock.
func NewRangeValidator(clock Clock) *RangeValidator {
	if clock == nil {
		clock = SystemClock{}
	}
	return &RangeValidator{clock: clock}
}

// Validate runs every rule and returns a *domain.ValidationError listing all
// violations, or nil when the request is acceptable.
func (v *RangeValidator) Validate(req RangeRequest) error {
	ve := &domain.ValidationError{}
	dates := req.Dates
	today := v.clock.Now().In(ReferenceZone)

	if len(dates) < MinDates || len(dates) > MaxDates {
		ve.Add(CodeDatesLength, "dates must be between 1 and 60")
	}

	unique := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		unique[d] = struct{}{}
	}
	if len(unique) != len(dates) {
		ve.Add(CodeDatesUnique, "dates must be unique")
	}

	sorted := slices.Clone(dates)
	slices.Sort(sorted)
	if !slices.Equal(dates, sorted) {
		ve.Add(CodeDatesSorted, "dates must be sorted")
	}

	// Month and day are compared independently and the year is ignored.
	// Existing rooms were accepted under this rule, so it stays as is.
	if len(dates) > 0 {
		if first, err := time.Parse(DateLayout, dates[0]); err == nil {
			if first.Month() < today.Month() || first.Day() < today.Day() {
				ve.Add(CodeFirstDatePast, "first date must be today no matter how early it is.")
			}
		}
	}

	if len(sorted) > 0 && sorted[len(sorted)-1] > HorizonDate(today) {
		ve.Add(CodeDatesHorizon, "dates must be within 6 months")
	}

	hasStart := req.StartTime != nil && *req.StartTime != ""
	hasEnd := req.EndTime != nil && *req.EndTime != ""
	if !req.DateOnly && (!hasStart || !hasEnd) {
		ve.Add(CodeTimesRequired, "startTime and endTime are required when dateOnly is false")
	}
	if req.DateOnly && (hasStart || hasEnd) {
		ve.Add(CodeTimesNotAllowed, "startTime and endTime are not allowed when dateOnly is true")
	}
	if hasStart && hasEnd && *req.StartTime >= *req.EndTime {
		ve.Add(CodeTimeOrder, "startTime must be earlier than endTime")
	}

	return ve.Err()
}

// HorizonDate returns the latest acceptable date for a room created on the
// given reference day: six calendar months later, with day overflow rolled
// forward the way time.AddDate normalises it (Aug 31 becomes Mar 3).
func HorizonDate(today time.Time) string {
	return today.AddDate(0, HorizonMonths, 0).Format(DateLayout)
}
