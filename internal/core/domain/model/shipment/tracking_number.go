package shipment

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"

	"tracking/internal/pkg/errs"
)

const (
	// trackingNumberPrefix is the fixed human-recognizable prefix of every
	// tracking number.
	trackingNumberPrefix = "SHP"

	// trackingNumberSuffixLength is the number of random characters after
	// the prefix. 36^10 possible suffixes make collisions negligible at
	// expected scale; the database unique constraint is the hard guarantee.
	trackingNumberSuffixLength = 10
)

const trackingNumberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var trackingNumberPattern = regexp.MustCompile(
	fmt.Sprintf(`^%s[A-Z0-9]{%d}$`, trackingNumberPrefix, trackingNumberSuffixLength))

// ErrTrackingNumberIsNotConstructed indicates a zero-value TrackingNumber.
var ErrTrackingNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"TrackingNumber must be created via NewTrackingNumber or TrackingNumberFromString")

// TrackingNumber is the public-facing unique identifier of a shipment,
// issued once at creation time and immutable thereafter. It is the external
// lookup key for public tracking.
type TrackingNumber struct {
	value string
}

// NewTrackingNumber generates a fresh tracking number: the fixed prefix
// followed by a random alphanumeric suffix. Uniqueness is probabilistic;
// the persistence layer's unique constraint is the actual enforcement
// mechanism and creation retries on a constraint violation.
func NewTrackingNumber() (TrackingNumber, error) {
	suffix := make([]byte, trackingNumberSuffixLength)
	alphabetSize := big.NewInt(int64(len(trackingNumberAlphabet)))

	for i := range suffix {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return TrackingNumber{}, fmt.Errorf("generate tracking number: %w", err)
		}
		suffix[i] = trackingNumberAlphabet[n.Int64()]
	}

	return TrackingNumber{value: trackingNumberPrefix + string(suffix)}, nil
}

// TrackingNumberFromString reconstructs a tracking number from its string
// form, validating the expected format. Used when loading from persistence
// and when parsing public lookup requests.
func TrackingNumberFromString(s string) (TrackingNumber, error) {
	if !trackingNumberPattern.MatchString(s) {
		return TrackingNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"trackingNumber",
			fmt.Errorf("%q does not match the expected format", s),
		)
	}
	return TrackingNumber{value: s}, nil
}

// String returns the full tracking number, e.g. "SHP7K2QX9A4BD".
func (t TrackingNumber) String() string {
	return t.value
}

// IsEqual compares two tracking numbers for equality.
func (t TrackingNumber) IsEqual(other TrackingNumber) bool {
	return t.value == other.value
}

// Validate returns ErrTrackingNumberIsNotConstructed for the zero value.
func (t TrackingNumber) Validate() error {
	if t.value == "" {
		return ErrTrackingNumberIsNotConstructed
	}
	return nil
}
