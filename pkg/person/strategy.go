// CLAUDE:SUMMARY Pluggable field strategies for the cosmetic record fields, with a built-in default implementation.
package person

import (
	"fmt"
	"math/rand"
	"strings"
)

// FieldStrategy produces the cosmetic string fields of a record. A custom
// strategy can replace any subset of fields; when a strategy call returns
// an error the generator falls back to the built-in default for that field
// instead of propagating.
type FieldStrategy interface {
	// FullName composes a surname plus a one- or two-character given name.
	FullName(rng *rand.Rand, gender int) (string, error)
	// Phone produces an 11-digit mobile number.
	Phone(rng *rand.Rand) (string, error)
	// Email produces an address; name is the record's full name, for
	// strategies that want to derive the local part from it.
	Email(rng *rand.Rand, name string) (string, error)
	// Address composes a street address under the resolved region chain.
	Address(rng *rand.Rand, region []string) (string, error)
}

// DefaultStrategy returns the built-in field strategy.
func DefaultStrategy() FieldStrategy {
	return defaultStrategy{}
}

type defaultStrategy struct{}

func (defaultStrategy) FullName(rng *rand.Rand, gender int) (string, error) {
	pool := givenFemale
	if gender == 1 {
		pool = givenMale
	}
	name := surnames[rng.Intn(len(surnames))] + pool[rng.Intn(len(pool))]
	if rng.Intn(2) == 1 {
		name += pool[rng.Intn(len(pool))]
	}
	return name, nil
}

func (defaultStrategy) Phone(rng *rand.Rand) (string, error) {
	var b strings.Builder
	b.WriteString(phonePrefixes[rng.Intn(len(phonePrefixes))])
	for b.Len() < 11 {
		b.WriteByte(byte('0' + rng.Intn(10)))
	}
	return b.String(), nil
}

func (defaultStrategy) Email(rng *rand.Rand, _ string) (string, error) {
	n := 6 + rng.Intn(5)
	local := make([]byte, n)
	for i := range local {
		local[i] = byte('a' + rng.Intn(26))
	}
	// Roughly half the local parts get a numeric tail, as real mailboxes do.
	suffix := ""
	if rng.Intn(2) == 1 {
		suffix = fmt.Sprintf("%d", rng.Intn(1000))
	}
	return string(local) + suffix + "@" + emailDomains[rng.Intn(len(emailDomains))], nil
}

func (defaultStrategy) Address(rng *rand.Rand, region []string) (string, error) {
	street := streetNames[rng.Intn(len(streetNames))] + streetSuffixes[rng.Intn(len(streetSuffixes))]
	return fmt.Sprintf("%s%s%d号", strings.Join(region, ""), street, 1+rng.Intn(200)), nil
}
