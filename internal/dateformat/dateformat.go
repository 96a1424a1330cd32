// Package dateformat detects the day/month ordering of date strings in a
// statement sample and normalizes individual dates to the canonical
// DD/MM/YYYY form.
package dateformat

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"dmunoz/cartola-csv/internal/models"

	"github.com/shopspring/decimal"
)

// detectSampleLimit caps how many samples Detect examines.
const detectSampleLimit = 10

var separatorRe = regexp.MustCompile(`[-/]`)

// splitParts splits a date string on "-" or "/" and parses the pieces.
// Returns false unless the string has exactly three numeric parts.
func splitParts(dateStr string) (p1, p2, p3 int, ok bool) {
	parts := separatorRe.Split(strings.TrimSpace(dateStr), -1)
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return 0, 0, 0, false
		}
		nums[i] = n
	}
	return nums[0], nums[1], nums[2], true
}

// Detect examines up to the first 10 non-empty samples and votes on the
// day/month ordering. A leading part above 12 is unambiguous evidence of
// day-first ordering; when both leading parts could be months, a
// four-digit trailing year counts as day-first and a two-digit year as
// month-first. Ties and absent evidence return auto.
func Detect(samples []string) models.DateFormat {
	mmddCount := 0
	ddmmCount := 0
	examined := 0

	for _, sample := range samples {
		s := strings.TrimSpace(sample)
		if s == "" {
			continue
		}
		if examined >= detectSampleLimit {
			break
		}
		examined++

		p1, p2, p3, ok := splitParts(s)
		if !ok {
			continue
		}

		if p1 > 12 && p2 <= 12 {
			ddmmCount++
		} else if p1 <= 12 && p2 <= 12 {
			if p3 >= 1000 {
				ddmmCount++
			} else {
				mmddCount++
			}
		}
	}

	switch {
	case mmddCount > ddmmCount:
		return models.DateFormatMMDDYY
	case ddmmCount > mmddCount:
		return models.DateFormatDDMMYY
	default:
		return models.DateFormatAuto
	}
}

// Normalize converts a date string to DD/MM/YYYY. An explicit format
// assigns day and month directly; auto re-derives the ordering per value
// using the same heuristic as Detect. Non-3-part or unparseable input is
// passed through unchanged rather than treated as an error.
func Normalize(dateStr string, format models.DateFormat) string {
	if strings.TrimSpace(dateStr) == "" {
		return dateStr
	}

	p1, p2, p3, ok := splitParts(dateStr)
	if !ok {
		return dateStr
	}

	resolved := format
	if resolved != models.DateFormatMMDDYY && resolved != models.DateFormatDDMMYY {
		switch {
		case p1 > 12 && p2 <= 12:
			resolved = models.DateFormatDDMMYY
		case p1 <= 12 && p2 > 12:
			resolved = models.DateFormatMMDDYY
		case p3 >= 1000:
			resolved = models.DateFormatDDMMYY
		default:
			resolved = models.DateFormatMMDDYY
		}
	}

	var day, month, year int
	if resolved == models.DateFormatMMDDYY {
		month, day, year = p1, p2, p3
	} else {
		day, month, year = p1, p2, p3
	}

	if year < 100 {
		if year < 50 {
			year = 2000 + year
		} else {
			year = 1900 + year
		}
	}

	return fmt.Sprintf("%02d/%02d/%d", day, month, year)
}

// ParseDay parses a canonical DD/MM/YYYY string into a time.Time for
// ordering. Unparseable dates sort first via the zero time.
func ParseDay(dateStr string) time.Time {
	p1, p2, p3, ok := splitParts(dateStr)
	if !ok {
		return time.Time{}
	}
	return time.Date(p3, time.Month(p2), p1, 0, 0, 0, 0, time.UTC)
}

// FromExcelSerial converts an Excel serial day number into DD/MM/YYYY.
// Excel counts from 1900-01-01 and inherits the Lotus 1-2-3 leap year
// bug, hence the two-day offset.
func FromExcelSerial(serial decimal.Decimal) string {
	days, _ := serial.Float64()
	epoch := time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)
	d := epoch.Add(time.Duration((days - 2) * 24 * float64(time.Hour)))
	return fmt.Sprintf("%02d/%02d/%d", d.Day(), int(d.Month()), d.Year())
}

// LooksLikeExcelSerial reports whether a numeric cell value is plausibly
// an Excel serial date rather than an amount.
func LooksLikeExcelSerial(d decimal.Decimal) bool {
	one := decimal.NewFromInt(1)
	limit := decimal.NewFromInt(1000000)
	return d.GreaterThan(one) && d.LessThan(limit)
}
