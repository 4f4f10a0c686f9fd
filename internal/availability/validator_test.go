package availability

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"roomscheduler/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

// 2024-03-15 00:00 UTC is 2024-03-15 09:00 in the reference zone.
var march15 = FixedClock(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))

func violations(t *testing.T, err error) *domain.ValidationError {
	t.Helper()
	require.Error(t, err)
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	return ve
}

func TestRangeValidator_Validate(t *testing.T) {
	v := NewRangeValidator(march15)

	tests := []struct {
		name      string
		req       RangeRequest
		wantCodes []string
	}{
		{
			name: "valid date only",
			req:  RangeRequest{Dates: []string{"2024-03-15", "2024-03-20"}, DateOnly: true},
		},
		{
			name: "valid timed",
			req: RangeRequest{
				Dates:     []string{"2024-03-16"},
				StartTime: strPtr("09:00"),
				EndTime:   strPtr("18:00"),
			},
		},
		{
			name:      "empty dates",
			req:       RangeRequest{Dates: []string{}, DateOnly: true},
			wantCodes: []string{CodeDatesLength},
		},
		{
			name:      "nil dates",
			req:       RangeRequest{DateOnly: true},
			wantCodes: []string{CodeDatesLength},
		},
		{
			name:      "duplicate dates",
			req:       RangeRequest{Dates: []string{"2024-03-16", "2024-03-16"}, DateOnly: true},
			wantCodes: []string{CodeDatesUnique},
		},
		{
			name:      "unsorted dates",
			req:       RangeRequest{Dates: []string{"2024-03-20", "2024-03-16"}, DateOnly: true},
			wantCodes: []string{CodeDatesSorted},
		},
		{
			name:      "first date before today",
			req:       RangeRequest{Dates: []string{"2024-03-14"}, DateOnly: true},
			wantCodes: []string{CodeFirstDatePast},
		},
		{
			name:      "later month but smaller day is still rejected",
			req:       RangeRequest{Dates: []string{"2024-04-01"}, DateOnly: true},
			wantCodes: []string{CodeFirstDatePast},
		},
		{
			name: "earlier year with same month and day passes",
			req:  RangeRequest{Dates: []string{"2023-03-15"}, DateOnly: true},
		},
		{
			name:      "beyond six months",
			req:       RangeRequest{Dates: []string{"2024-03-15", "2024-09-16"}, DateOnly: true},
			wantCodes: []string{CodeDatesHorizon},
		},
		{
			name: "exactly six months",
			req:  RangeRequest{Dates: []string{"2024-03-15", "2024-09-15"}, DateOnly: true},
		},
		{
			name:      "timed room without times",
			req:       RangeRequest{Dates: []string{"2024-03-16"}},
			wantCodes: []string{CodeTimesRequired},
		},
		{
			name:      "timed room with only start",
			req:       RangeRequest{Dates: []string{"2024-03-16"}, StartTime: strPtr("09:00")},
			wantCodes: []string{CodeTimesRequired},
		},
		{
			name:      "timed room with empty end",
			req:       RangeRequest{Dates: []string{"2024-03-16"}, StartTime: strPtr("09:00"), EndTime: strPtr("")},
			wantCodes: []string{CodeTimesRequired},
		},
		{
			name:      "date only with start time",
			req:       RangeRequest{Dates: []string{"2024-03-16"}, DateOnly: true, StartTime: strPtr("09:00")},
			wantCodes: []string{CodeTimesNotAllowed},
		},
		{
			name: "date only with both times in wrong order",
			req: RangeRequest{
				Dates:     []string{"2024-03-16"},
				DateOnly:  true,
				StartTime: strPtr("18:00"),
				EndTime:   strPtr("09:00"),
			},
			wantCodes: []string{CodeTimesNotAllowed, CodeTimeOrder},
		},
		{
			name: "start after end",
			req: RangeRequest{
				Dates:     []string{"2024-03-16"},
				StartTime: strPtr("18:00"),
				EndTime:   strPtr("09:00"),
			},
			wantCodes: []string{CodeTimeOrder},
		},
		{
			name: "equal times are rejected",
			req: RangeRequest{
				Dates:     []string{"2024-03-16"},
				StartTime: strPtr("09:00"),
				EndTime:   strPtr("09:00"),
			},
			wantCodes: []string{CodeTimeOrder},
		},
		{
			name: "every rule collected at once",
			req: RangeRequest{
				Dates:     []string{"2024-12-01", "2024-03-01", "2024-03-01"},
				StartTime: strPtr("10:00"),
			},
			wantCodes: []string{CodeDatesUnique, CodeDatesSorted, CodeFirstDatePast, CodeDatesHorizon, CodeTimesRequired},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)
			if len(tt.wantCodes) == 0 {
				require.NoError(t, err)
				return
			}
			ve := violations(t, err)
			got := make([]string, len(ve.Violations))
			for i, vi := range ve.Violations {
				got[i] = vi.Code
			}
			assert.Equal(t, tt.wantCodes, got)
		})
	}
}

func TestRangeValidator_Messages(t *testing.T) {
	v := NewRangeValidator(march15)

	ve := violations(t, v.Validate(RangeRequest{Dates: []string{}, DateOnly: true, StartTime: strPtr("09:00")}))
	assert.Equal(t, []string{
		"dates must be between 1 and 60",
		"startTime and endTime are not allowed when dateOnly is true",
	}, ve.Messages())
}

func TestRangeValidator_TooManyDates(t *testing.T) {
	v := NewRangeValidator(FixedClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))

	dates := make([]string, 0, 61)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 61; i++ {
		dates = append(dates, start.AddDate(0, 0, i).Format(DateLayout))
	}

	err := v.Validate(RangeRequest{Dates: dates[:60], DateOnly: true})
	require.NoError(t, err)

	ve := violations(t, v.Validate(RangeRequest{Dates: dates, DateOnly: true}))
	assert.True(t, ve.Has(CodeDatesLength))
}

func TestRangeValidator_ReferenceZone(t *testing.T) {
	// 16:00 UTC on the 14th is already the 15th at UTC+9.
	v := NewRangeValidator(FixedClock(time.Date(2024, 3, 14, 16, 0, 0, 0, time.UTC)))

	ve := violations(t, v.Validate(RangeRequest{Dates: []string{"2024-03-14"}, DateOnly: true}))
	assert.True(t, ve.Has(CodeFirstDatePast))

	require.NoError(t, v.Validate(RangeRequest{Dates: []string{"2024-03-15"}, DateOnly: true}))
}

func TestHorizonDate(t *testing.T) {
	tests := []struct {
		today time.Time
		want  string
	}{
		{time.Date(2024, 3, 15, 9, 0, 0, 0, ReferenceZone), "2024-09-15"},
		{time.Date(2024, 8, 31, 9, 0, 0, 0, ReferenceZone), "2025-03-03"},
		{time.Date(2023, 8, 31, 9, 0, 0, 0, ReferenceZone), "2024-03-02"},
		{time.Date(2024, 11, 5, 9, 0, 0, 0, ReferenceZone), "2025-05-05"},
	}
	for _, tt := range tests {
		t.Run(tt.today.Format(DateLayout), func(t *testing.T) {
			assert.Equal(t, tt.want, HorizonDate(tt.today))
		})
	}
}

func TestRangeValidator_HorizonRollsOver(t *testing.T) {
	v := NewRangeValidator(FixedClock(time.Date(2024, 8, 31, 0, 0, 0, 0, time.UTC)))

	for _, tc := range []struct {
		last    string
		wantErr bool
	}{
		{"2025-03-03", false},
		{"2025-03-04", true},
	} {
		t.Run(tc.last, func(t *testing.T) {
			err := v.Validate(RangeRequest{Dates: []string{"2024-08-31", tc.last}, DateOnly: true})
			if !tc.wantErr {
				require.NoError(t, err)
				return
			}
			assert.True(t, violations(t, err).Has(CodeDatesHorizon))
		})
	}
}

func TestRangeValidator_SucceedsForAnyValidLength(t *testing.T) {
	v := NewRangeValidator(march15)
	start := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	for n := MinDates; n <= MaxDates; n++ {
		dates := make([]string, n)
		for i := range dates {
			dates[i] = start.AddDate(0, 0, i).Format(DateLayout)
		}
		t.Run(fmt.Sprintf("%d dates", n), func(t *testing.T) {
			require.NoError(t, v.Validate(RangeRequest{Dates: dates, DateOnly: true}))
		})
	}
}
