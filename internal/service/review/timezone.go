package review

import (
	"time"

	"github.com/heartmarshall/quizreview-backend/internal/domain"
)

const dateLayout = "2006-01-02"

// DayStart returns the start of the day containing now in tz, converted to UTC.
func DayStart(now time.Time, tz *time.Location) time.Time {
	local := now.In(tz)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, tz).UTC()
}

// NextDayStart returns the start of the following day in tz, converted to UTC.
func NextDayStart(now time.Time, tz *time.Location) time.Time {
	// AddDate handles DST correctly, Add(24h) does not
	next := DayStart(now, tz).In(tz).AddDate(0, 0, 1)
	return time.Date(next.Year(), next.Month(), next.Day(), 0, 0, 0, 0, tz).UTC()
}

// dayWindow resolves a YYYY-MM-DD date (or today, when empty) to its
// [start, end) window in tz.
func dayWindow(date string, now time.Time, tz *time.Location) (day string, from, to time.Time, err error) {
	ref := now.In(tz)
	if date != "" {
		ref, err = time.ParseInLocation(dateLayout, date, tz)
		if err != nil {
			return "", time.Time{}, time.Time{}, domain.NewValidationError("date", "must be YYYY-MM-DD")
		}
	}
	return ref.Format(dateLayout), DayStart(ref, tz), NextDayStart(ref, tz), nil
}
