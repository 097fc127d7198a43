package office

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/ngabsen-backend-go/internal/pkg/validator"
)

// Policy is the single office configuration row. Times of day are "HH:MM"
// in the policy's own timezone.
type Policy struct {
	ID              string
	StartTime       string
	EndTime         string
	Location        string
	MonthlyRecapDay int
	Timezone        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Loc resolves the policy timezone.
func (p Policy) Loc() (*time.Location, error) {
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return nil, fmt.Errorf("office timezone %q: %w", p.Timezone, err)
	}
	return loc, nil
}

// LocalDate returns the office-local calendar date of t as a UTC midnight,
// which is how attendance dates are keyed and stored.
func LocalDate(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// StartOn returns the office start instant on the given calendar date.
func (p Policy) StartOn(date time.Time, loc *time.Location) (time.Time, error) {
	return at(date, p.StartTime, loc)
}

// EndOn returns the office end instant on the given calendar date.
func (p Policy) EndOn(date time.Time, loc *time.Location) (time.Time, error) {
	return at(date, p.EndTime, loc)
}

// RecapDayIn clamps MonthlyRecapDay to the length of the given month.
func (p Policy) RecapDayIn(year int, month time.Month) int {
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if p.MonthlyRecapDay > last {
		return last
	}
	return p.MonthlyRecapDay
}

func at(date time.Time, clock string, loc *time.Location) (time.Time, error) {
	hour, minute, err := validator.ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := date.Date()
	return time.Date(y, m, d, hour, minute, 0, 0, loc), nil
}
