// server/internal/garage/eligibility.go
package garage

import (
	"fmt"
	"strings"
	"time"
)

// MinimumAge is the age a member must have reached to register or park a vehicle.
const MinimumAge = 18

// BirthDateFromPersonalNumber extracts the birth date from a personal number of
// the form YYMMDD-XXXX, YYYYMMDD-XXXX or the same without separator. Separators
// (hyphen, space) are stripped first. A "19"/"20" prefix with at least eight
// digits is read as YYYYMMDD; otherwise the first six digits are read as YYMMDD
// with years 00-20 mapped to the 2000s and the rest to the 1900s.
func BirthDateFromPersonalNumber(personalNumber string) (time.Time, error) {
	digits := strings.NewReplacer("-", "", " ", "").Replace(personalNumber)
	if len(digits) < 6 {
		return time.Time{}, ErrInvalidPersonalNumber
	}

	var datePart string
	prefix := digits[:2]
	if len(digits) >= 8 && (prefix == "19" || prefix == "20") {
		datePart = digits[:8]
	} else {
		yy := digits[:2]
		var year int
		if _, err := fmt.Sscanf(yy, "%d", &year); err != nil {
			return time.Time{}, ErrInvalidPersonalNumber
		}
		if year <= 20 {
			year += 2000
		} else {
			year += 1900
		}
		datePart = fmt.Sprintf("%04d%s", year, digits[2:6])
	}

	birth, err := time.Parse("20060102", datePart)
	if err != nil {
		return time.Time{}, ErrInvalidPersonalNumber
	}
	return birth, nil
}

// AgeAt computes age in whole years at the given date.
func AgeAt(birth, at time.Time) int {
	age := at.Year() - birth.Year()
	if at.Month() < birth.Month() || (at.Month() == birth.Month() && at.Day() < birth.Day()) {
		age--
	}
	return age
}

// CheckEligibility verifies the minimum-age requirement encoded in a personal
// number. It returns ErrInvalidPersonalNumber when no birth date can be
// extracted and ErrUnderAge when the derived age is below MinimumAge.
func CheckEligibility(personalNumber string, now time.Time) error {
	birth, err := BirthDateFromPersonalNumber(personalNumber)
	if err != nil {
		return err
	}
	if AgeAt(birth, now) < MinimumAge {
		return ErrUnderAge
	}
	return nil
}
