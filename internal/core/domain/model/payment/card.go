package payment

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"dineease/internal/pkg/errs"
)

var (
	cardNumberPattern = regexp.MustCompile(`^\d{16}$`)
	expiryPattern     = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvvPattern        = regexp.MustCompile(`^\d{3,4}$`)
)

// CardDetails carries the raw card fields entered at checkout. Spaces in
// the number are tolerated ("4242 4242 4242 4242"). Validation is purely
// structural: format checks plus an expiry freshness check against the
// supplied clock.
type CardDetails struct {
	Number string
	Name   string
	Expiry string // MM/YY
	CVV    string
}

// FieldErrors validates the card details and returns a field name ->
// message map, empty when the details are acceptable.
//
// Checks performed:
//   - number: 16 digits after stripping spaces
//   - name: required
//   - expiry: MM/YY format and not before the month containing now
//   - cvv: 3 or 4 digits
func (c CardDetails) FieldErrors(now time.Time) map[string]string {
	fieldErrors := make(map[string]string)

	if !cardNumberPattern.MatchString(strings.ReplaceAll(c.Number, " ", "")) {
		fieldErrors["number"] = "Invalid card number"
	}
	if c.Name == "" {
		fieldErrors["name"] = "Name on card is required"
	}

	if !expiryPattern.MatchString(c.Expiry) {
		fieldErrors["expiry"] = "Invalid expiry date (MM/YY)"
	} else {
		parts := strings.Split(c.Expiry, "/")
		month, _ := strconv.Atoi(parts[0])
		year, _ := strconv.Atoi(parts[1])
		expiry := time.Date(2000+year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		if expiry.Before(startOfMonth) {
			fieldErrors["expiry"] = "Card has expired"
		}
	}

	if !cvvPattern.MatchString(c.CVV) {
		fieldErrors["cvv"] = "Invalid CVV"
	}

	return fieldErrors
}

// Validate returns a ValueIsInvalidError naming the failing fields when the
// card details are not acceptable.
func (c CardDetails) Validate(now time.Time) error {
	fieldErrors := c.FieldErrors(now)
	if len(fieldErrors) == 0 {
		return nil
	}

	fields := make([]string, 0, len(fieldErrors))
	for field := range fieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	return errs.NewValueIsInvalidErrorWithCause("card details",
		fmt.Errorf("invalid fields: %s", strings.Join(fields, ", ")))
}
