package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// OriginalDateLayout is the wire format of HistoricalEvent.OriginalDate.
const OriginalDateLayout = "2006-01-02"

// GenericOriginYear marks annually recurring observances whose origin year
// carries no meaning (e.g. "World Health Day"). Anniversary counts computed
// against it are suppressed in every display surface.
const GenericOriginYear = 1900

var ErrInvalidDate = errors.New("event date is not a valid calendar date")

type Editor struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type HistoricalEvent struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	OriginalDate   string  `json:"originalDate"`
	Description    string  `json:"description"`
	Category       string  `json:"category"`
	AssignedEditor *Editor `json:"assignedEditor,omitempty"`
	IsManual       bool    `json:"isManual,omitempty"`
}

// DateDisplayInfo is derived from OriginalDate and a reference day. It is
// recomputed on every read and never persisted.
type DateDisplayInfo struct {
	NextOccurrence   time.Time `json:"nextOccurrence"`
	DaysRemaining    int       `json:"daysRemaining"`
	YearsAnniversary int       `json:"yearsAnniversary"`
	FormattedDate    string    `json:"formattedDate"`
}

func (e HistoricalEvent) ParseOriginalDate() (time.Time, error) {
	t, err := time.Parse(OriginalDateLayout, e.OriginalDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, e.OriginalDate)
	}
	return t, nil
}

// HasKnownOriginYear reports whether the anniversary count for this event is
// meaningful. Events seeded with the generic placeholder year are "every
// year" observances without an origin.
func (e HistoricalEvent) HasKnownOriginYear() bool {
	original, err := e.ParseOriginalDate()
	if err != nil {
		return false
	}
	return original.Year() != GenericOriginYear
}

func (e HistoricalEvent) Matches(term string) bool {
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(e.Title), term) ||
		strings.Contains(strings.ToLower(e.Category), term)
}

// DateInfo maps the event's original month/day to its next occurrence on or
// after the given reference day.
//
// Feb 29 policy: candidate dates are built with time.Date, which normalizes
// Feb 29 to Mar 1 in non-leap years. That normalized date is the occurrence.
func (e HistoricalEvent) DateInfo(today time.Time) (DateDisplayInfo, error) {
	original, err := e.ParseOriginalDate()
	if err != nil {
		return DateDisplayInfo{}, err
	}

	today = Midnight(today)

	next := time.Date(
		today.Year(), original.Month(), original.Day(),
		0, 0, 0, 0, time.UTC,
	)
	if next.Before(today) {
		// this year's occurrence already passed
		next = time.Date(
			today.Year()+1, original.Month(), original.Day(),
			0, 0, 0, 0, time.UTC,
		)
	}

	//nolint:mnd //hours per day
	days := int(next.Sub(today).Hours() / 24)

	return DateDisplayInfo{
		NextOccurrence:   next,
		DaysRemaining:    days,
		YearsAnniversary: next.Year() - original.Year(),
		FormattedDate:    next.Format("Jan 2, 2006"),
	}, nil
}

// Midnight strips the time-of-day so same-day events count as zero days
// remaining rather than negative.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
