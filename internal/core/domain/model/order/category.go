package order

import (
	"fmt"

	"parcelhub/internal/pkg/errs"
)

// Category classifies a parcel when it is registered.
type Category int

const (
	UnknownCategory Category = iota
	Food
	Courier
	Shopping
)

func getCategoryStrings() map[Category]string {
	//nolint:exhaustive // UnknownCategory is intentionally excluded as it's invalid
	return map[Category]string{
		Food:     "Food",
		Courier:  "Courier",
		Shopping: "Shopping",
	}
}

// Categories lists the valid categories in display order.
func Categories() []Category {
	return []Category{Food, Courier, Shopping}
}

// ParseCategory converts the String form of a category back to a Category.
func ParseCategory(s string) (Category, error) {
	for _, category := range Categories() {
		if category.String() == s {
			return category, nil
		}
	}
	return UnknownCategory, errs.NewValueIsInvalidErrorWithCause("category is invalid", fmt.Errorf("%q is not a valid category", s))
}

func (c Category) Validate() error {
	if _, ok := getCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("category is invalid", fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}

func (c Category) String() string {
	if str, ok := getCategoryStrings()[c]; ok {
		return str
	}
	return "Unknown"
}
