// CLAUDE:SUMMARY 18-character identity number codec: encode with ISO 7064 MOD 11-2 checksum, decode, verify.
//
// Package idnum encodes and decodes the 18-character identity number
// format: 6-digit region code, 8-digit birth date, 3-digit sequence code
// whose parity carries gender (odd = male, even = female), and one
// checksum character.
package idnum

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"
)

// GB/T 11643 checksum scheme, derived from ISO 7064 MOD 11-2: weighted sum
// of the first 17 digits mod 11 indexes the character table.
var (
	checksumWeights = [17]int{7, 9, 10, 5, 8, 4, 2, 1, 6, 3, 7, 9, 10, 5, 8, 4, 2}
	checksumTable   = [11]byte{'1', '0', 'X', '9', '8', '7', '6', '5', '4', '3', '2'}
)

// Gender flags carried by the sequence code parity.
const (
	Female = 0
	Male   = 1
)

// Encode produces an 18-character identity number. The sequence code is
// drawn from [1,999] and its parity forced to match gender by decrementing,
// with 0 clamped back to 2 so the even case stays in range.
func Encode(regionCode, birthDate string, gender int, rng *rand.Rand) (string, error) {
	if len(regionCode) != 6 || !isDigits(regionCode) {
		return "", &ValidationError{Field: "regionCode", Reason: "must be exactly 6 digits"}
	}
	if len(birthDate) != 8 || !isDigits(birthDate) {
		return "", &ValidationError{Field: "birthDate", Reason: "must be exactly 8 digits (YYYYMMDD)"}
	}
	if gender != Female && gender != Male {
		return "", &ValidationError{Field: "gender", Reason: "must be 0 (female) or 1 (male)"}
	}

	seq := 1 + rng.Intn(999)
	if seq%2 != gender {
		seq--
		if seq < 1 {
			seq = 2
		}
	}

	body := fmt.Sprintf("%s%s%03d", regionCode, birthDate, seq)
	check, err := ComputeChecksum(body)
	if err != nil {
		return "", err
	}
	return body + string(check), nil
}

// ComputeChecksum maps the 17-digit body to its checksum character.
func ComputeChecksum(body string) (byte, error) {
	if len(body) != 17 || !isDigits(body) {
		return 0, &ValidationError{Field: "number", Reason: "checksum body must be exactly 17 digits"}
	}
	sum := 0
	for i := 0; i < 17; i++ {
		sum += int(body[i]-'0') * checksumWeights[i]
	}
	return checksumTable[sum%11], nil
}

// VerifyChecksum reports whether the final character of an 18-character
// number matches its computed checksum. A lowercase x is accepted.
// Malformed input verifies as false, never as an error.
func VerifyChecksum(number string) bool {
	if len(number) != 18 {
		return false
	}
	check, err := ComputeChecksum(number[:17])
	if err != nil {
		return false
	}
	last := number[17]
	if last == 'x' {
		last = 'X'
	}
	return last == check
}

// Info is the decoded bundle of an identity number. Gender is derived
// from the sequence code parity.
type Info struct {
	RegionCode string `json:"region_code"`
	BirthYear  int    `json:"birth_year"`
	BirthMonth int    `json:"birth_month"`
	BirthDay   int    `json:"birth_day"`
	Age        int    `json:"age"`
	Gender     int    `json:"gender"`
}

// BirthDateISO formats the birth date as YYYY-MM-DD.
func (i *Info) BirthDateISO() string {
	return fmt.Sprintf("%04d-%02d-%02d", i.BirthYear, i.BirthMonth, i.BirthDay)
}

// Decode extracts region code, birth date, age and gender from an
// 18-character number. Only the format is validated; checksum verification
// is VerifyChecksum's job.
func Decode(number string) (*Info, error) {
	return decodeAt(number, time.Now())
}

func decodeAt(number string, now time.Time) (*Info, error) {
	if len(number) != 18 {
		return nil, &ValidationError{Field: "number", Reason: "must be exactly 18 characters"}
	}
	if !isDigits(number[:17]) {
		return nil, &ValidationError{Field: "number", Reason: "first 17 characters must be digits"}
	}
	if last := number[17]; (last < '0' || last > '9') && last != 'X' && last != 'x' {
		return nil, &ValidationError{Field: "number", Reason: "last character must be a digit or X"}
	}

	year, _ := strconv.Atoi(number[6:10])
	month, _ := strconv.Atoi(number[10:12])
	day, _ := strconv.Atoi(number[12:14])
	seq, _ := strconv.Atoi(number[14:17])

	return &Info{
		RegionCode: number[:6],
		BirthYear:  year,
		BirthMonth: month,
		BirthDay:   day,
		Age:        AgeAt(year, month, day, now),
		Gender:     seq % 2,
	}, nil
}

// AgeAt computes age at now for a birth date, decrementing when the
// birthday has not yet occurred in now's year.
func AgeAt(year, month, day int, now time.Time) int {
	age := now.Year() - year
	if int(now.Month()) < month || (int(now.Month()) == month && now.Day() < day) {
		age--
	}
	return age
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
