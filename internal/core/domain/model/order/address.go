package order

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"dineease/internal/pkg/errs"
)

// phonePattern accepts common US phone formats: "5551234567",
// "(555) 123-4567", "555.123.4567", "555 123 4567".
var phonePattern = regexp.MustCompile(`^\(?([0-9]{3})\)?[-. ]?([0-9]{3})[-. ]?([0-9]{4})$`)

// Address holds the contact and delivery details collected at checkout.
// It is a plain value object; which fields are required depends on the
// order type, so validation lives in FieldErrors/ValidateFor rather than a
// constructor.
type Address struct {
	Name                string
	Street              string
	City                string
	State               string
	ZipCode             string
	Phone               string
	SpecialInstructions string
}

// AddressPatch carries a partial address update. Nil fields keep their
// previous values; non-nil fields overwrite, including with empty strings.
type AddressPatch struct {
	Name                *string
	Street              *string
	City                *string
	State               *string
	ZipCode             *string
	Phone               *string
	SpecialInstructions *string
}

// Merge applies a patch and returns the resulting address.
// The receiver is not modified.
func (a Address) Merge(patch AddressPatch) Address {
	merged := a
	if patch.Name != nil {
		merged.Name = *patch.Name
	}
	if patch.Street != nil {
		merged.Street = *patch.Street
	}
	if patch.City != nil {
		merged.City = *patch.City
	}
	if patch.State != nil {
		merged.State = *patch.State
	}
	if patch.ZipCode != nil {
		merged.ZipCode = *patch.ZipCode
	}
	if patch.Phone != nil {
		merged.Phone = *patch.Phone
	}
	if patch.SpecialInstructions != nil {
		merged.SpecialInstructions = *patch.SpecialInstructions
	}
	return merged
}

// FieldErrors validates the address for the given order type and returns a
// field name -> message map, empty when the address is acceptable.
//
// Both order types require a name and a well-formed phone number. Delivery
// additionally requires street, city, state, and zip code.
func (a Address) FieldErrors(orderType OrderType) map[string]string {
	fieldErrors := make(map[string]string)

	if a.Name == "" {
		fieldErrors["name"] = "Name is required"
	}
	switch {
	case a.Phone == "":
		fieldErrors["phone"] = "Phone number is required"
	case !phonePattern.MatchString(a.Phone):
		fieldErrors["phone"] = "Invalid phone number format"
	}

	if orderType.RequiresAddress() {
		if a.Street == "" {
			fieldErrors["street"] = "Street address is required"
		}
		if a.City == "" {
			fieldErrors["city"] = "City is required"
		}
		if a.State == "" {
			fieldErrors["state"] = "State is required"
		}
		if a.ZipCode == "" {
			fieldErrors["zipCode"] = "ZIP code is required"
		}
	}

	return fieldErrors
}

// ValidateFor returns a ValueIsInvalidError naming the failing fields when
// the address is not acceptable for the given order type.
func (a Address) ValidateFor(orderType OrderType) error {
	fieldErrors := a.FieldErrors(orderType)
	if len(fieldErrors) == 0 {
		return nil
	}

	fields := make([]string, 0, len(fieldErrors))
	for field := range fieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	return errs.NewValueIsInvalidErrorWithCause("address",
		fmt.Errorf("invalid fields: %s", strings.Join(fields, ", ")))
}
