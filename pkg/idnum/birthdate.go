package idnum

import (
	"fmt"
	"math/rand"
	"time"
)

// Bounds for random birth date generation and for target ages.
const (
	minBirthYear = 1950
	maxBirthYear = 2005
	MaxAge       = 120
)

// RandomBirthDate draws a uniform year in [1950,2005], a uniform month and
// a uniform day within that month's actual length.
func RandomBirthDate(rng *rand.Rand) string {
	year := minBirthYear + rng.Intn(maxBirthYear-minBirthYear+1)
	month := 1 + rng.Intn(12)
	day := 1 + rng.Intn(daysInMonth(year, month))
	return fmt.Sprintf("%04d%02d%02d", year, month, day)
}

// BirthDateForAge picks a random birth date for which AgeAt yields exactly
// age at now: now shifted back age years, then back a further 0-364 days.
func BirthDateForAge(age int, rng *rand.Rand, now time.Time) (string, error) {
	if age < 0 || age > MaxAge {
		return "", &ValidationError{Field: "age", Reason: fmt.Sprintf("must be between 0 and %d", MaxAge)}
	}
	d := now.AddDate(-age, 0, -rng.Intn(365))
	return d.Format("20060102"), nil
}

// Gregorian rule: divisible by 4 and not by 100, or divisible by 400.
func isLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

func daysInMonth(year, month int) int {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 31
	}
}
