package clock

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour

	epochYear = 1970
)

var (
	monthDays     = [12]int64{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	leapMonthDays = [12]int64{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
)

// IsLeapYear returns true when the year has 366 days.
//
// This is the simplified every 4 years rule counted from 1968, it ignores the
// century exceptions of the gregorian calendar, so 2100 is considered a leap
// year. All dates up to 2100-02-28 are correct.
func IsLeapYear(year int) bool {
	return (year-1968)%4 == 0
}

func yearSeconds(year int) int64 {
	if IsLeapYear(year) {
		return 366 * secondsPerDay
	}
	return 365 * secondsPerDay
}

// FromUnix decomposes the whole seconds elapsed since 1970-01-01T00:00:00Z
// into its civil calendar fields. Negative values return the zero Timestamp.
func FromUnix(secs int64) Timestamp {
	if secs < 0 {
		return Timestamp{}
	}

	// Years.
	year := epochYear
	for secs >= yearSeconds(year) {
		secs -= yearSeconds(year)
		year++
	}

	// Months, an instant on a month boundary belongs to the next month.
	days := monthDays
	if IsLeapYear(year) {
		days = leapMonthDays
	}
	month := 1
	for _, d := range days {
		ms := d * secondsPerDay
		if secs < ms {
			break
		}
		secs -= ms
		month++
	}

	return Timestamp{
		Year:   year,
		Month:  month,
		Day:    int(secs/secondsPerDay) + 1,
		Hour:   int(secs % secondsPerDay / secondsPerHour),
		Minute: int(secs % secondsPerHour / secondsPerMinute),
		Second: int(secs % secondsPerMinute),
	}
}
