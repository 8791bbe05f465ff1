package menu

import (
	"fmt"

	"dineease/internal/core/domain/model/kernel"
	"dineease/internal/pkg/errs"
)

// Option is a single choice within an option group, such as "Thin Crust" in
// a "Crust" group. PriceDelta is added to the item's base price when chosen
// and is never negative.
type Option struct {
	name       string
	priceDelta kernel.Money
}

// NewOption creates an option with a name and a non-negative price delta.
func NewOption(name string, priceDelta kernel.Money) (Option, error) {
	if name == "" {
		return Option{}, errs.NewValueIsRequiredError("option name")
	}
	if err := priceDelta.ValidateNonNegative("option price delta"); err != nil {
		return Option{}, err
	}
	return Option{name: name, priceDelta: priceDelta}, nil
}

// Name returns the option's display name.
func (o Option) Name() string {
	return o.name
}

// PriceDelta returns the surcharge applied when this option is chosen.
func (o Option) PriceDelta() kernel.Money {
	return o.priceDelta
}

// OptionGroup is a named set of mutually exclusive options on a menu item,
// e.g. "Size" with Personal/Medium/Large. Option names are unique within
// the group.
type OptionGroup struct {
	name    string
	options []Option
}

// NewOptionGroup creates an option group with at least one option and
// no duplicate option names.
func NewOptionGroup(name string, options []Option) (OptionGroup, error) {
	if name == "" {
		return OptionGroup{}, errs.NewValueIsRequiredError("option group name")
	}
	if len(options) == 0 {
		return OptionGroup{}, errs.NewValueIsRequiredError("option group options")
	}

	seen := make(map[string]struct{}, len(options))
	for _, option := range options {
		if _, ok := seen[option.name]; ok {
			return OptionGroup{}, errs.NewValueIsInvalidErrorWithCause("option group",
				fmt.Errorf("duplicate option %q in group %q", option.name, name))
		}
		seen[option.name] = struct{}{}
	}

	group := OptionGroup{name: name, options: make([]Option, len(options))}
	copy(group.options, options)
	return group, nil
}

// Name returns the group's display name.
func (g OptionGroup) Name() string {
	return g.name
}

// Options returns a copy of the group's options in declaration order.
func (g OptionGroup) Options() []Option {
	options := make([]Option, len(g.options))
	copy(options, g.options)
	return options
}

// find returns the option with the given name, if present.
func (g OptionGroup) find(optionName string) (Option, bool) {
	for _, option := range g.options {
		if option.name == optionName {
			return option, true
		}
	}
	return Option{}, false
}
