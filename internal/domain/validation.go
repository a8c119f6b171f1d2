package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

var (
	nameRe  = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑüÜ]+$`)
	emailRe = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

	maxPrice = decimal.New(1, MaxPriceDigits)
)

// ValidatePersonName accepts a single word of Spanish letters, 2..50 characters
func ValidatePersonName(name string) error {
	n := utf8.RuneCountInString(name)
	if n < MinNameLength || n > MaxNameLength {
		return fmt.Errorf("%w: length must be %d..%d", ErrInvalidName, MinNameLength, MaxNameLength)
	}
	if !nameRe.MatchString(name) {
		return fmt.Errorf("%w: only letters are allowed", ErrInvalidName)
	}
	return nil
}

// ValidateServiceName requires a non-blank name up to 100 characters
func ValidateServiceName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: empty", ErrInvalidName)
	}
	if utf8.RuneCountInString(name) > MaxServiceNameLength {
		return fmt.Errorf("%w: longer than %d", ErrInvalidName, MaxServiceNameLength)
	}
	return nil
}

func ValidateEmail(email string) error {
	if !emailRe.MatchString(strings.TrimSpace(email)) {
		return ErrInvalidEmail
	}
	return nil
}

// ValidatePassword requires 6+ characters with at least one upper-case letter and one digit
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return fmt.Errorf("%w: shorter than %d", ErrWeakPassword, MinPasswordLength)
	}

	var hasUpper, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper {
		return fmt.Errorf("%w: no upper-case letter", ErrWeakPassword)
	}
	if !hasDigit {
		return fmt.Errorf("%w: no digit", ErrWeakPassword)
	}
	return nil
}

// ParsePrice parses a non-negative amount with up to two decimals; a comma is accepted as separator
func ParsePrice(raw string) (decimal.Decimal, error) {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	if raw == "" {
		return decimal.Zero, fmt.Errorf("%w: empty", ErrInvalidPrice)
	}
	if strings.ContainsAny(raw, "eE") {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidPrice, raw)
	}

	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidPrice, raw)
	}
	if price.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: negative", ErrInvalidPrice)
	}
	if price.Exponent() < -MaxPriceScale {
		return decimal.Zero, fmt.Errorf("%w: more than %d decimals", ErrInvalidPrice, MaxPriceScale)
	}
	if price.GreaterThanOrEqual(maxPrice) {
		return decimal.Zero, fmt.Errorf("%w: must be below %s", ErrInvalidPrice, maxPrice)
	}
	return price, nil
}

// ParseDuration parses a positive number of minutes
func ParseDuration(raw string) (int, error) {
	minutes, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || minutes <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, raw)
	}
	return minutes, nil
}

// ParsePositiveID parses a positive identifier
func ParsePositiveID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	return id, nil
}
