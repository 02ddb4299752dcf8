package domain

import (
	"fmt"
	"strings"
	"time"
)

// Season is one of the four canonical anime seasons.
type Season string

const (
	SeasonWinter Season = "winter"
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
)

// ParseSeason normalizes a season name, case-insensitively. An unrecognized
// name is a client error, never a server fault.
func ParseSeason(s string) (Season, error) {
	switch strings.ToLower(s) {
	case "winter":
		return SeasonWinter, nil
	case "spring":
		return SeasonSpring, nil
	case "summer":
		return SeasonSummer, nil
	case "fall":
		return SeasonFall, nil
	default:
		return "", &ValidationError{
			Msg: fmt.Sprintf("invalid season %q, must be one of: winter, spring, summer, fall", s),
		}
	}
}

// DateRange is an inclusive calendar window, ISO-formatted on output.
type DateRange struct {
	From time.Time
	To   time.Time
}

// FromISO returns the start date as an ISO date string.
func (r DateRange) FromISO() string { return r.From.Format("2006-01-02") }

// ToISO returns the end date as an ISO date string.
func (r DateRange) ToISO() string { return r.To.Format("2006-01-02") }

// SeasonDateRange maps a (year, season) pair to its calendar window:
// winter Jan-Mar, spring Apr-Jun, summer Jul-Sep, fall Oct-Dec.
func SeasonDateRange(year int, season Season) DateRange {
	var fromMonth time.Month
	switch season {
	case SeasonWinter:
		fromMonth = time.January
	case SeasonSpring:
		fromMonth = time.April
	case SeasonSummer:
		fromMonth = time.July
	default:
		fromMonth = time.October
	}

	from := time.Date(year, fromMonth, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 3, -1) // last day of the third month

	return DateRange{From: from, To: to}
}

// CurrentSeason derives the (year, season) pair containing the given instant.
func CurrentSeason(now time.Time) (int, Season) {
	switch {
	case now.Month() <= time.March:
		return now.Year(), SeasonWinter
	case now.Month() <= time.June:
		return now.Year(), SeasonSpring
	case now.Month() <= time.September:
		return now.Year(), SeasonSummer
	default:
		return now.Year(), SeasonFall
	}
}
