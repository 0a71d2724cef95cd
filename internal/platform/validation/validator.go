package validation

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

var ErrInvalid = errors.New("validation failed")

// Validator checks a struct against its validate tags and reports the
// failures keyed by field name. A nil map means s is valid.
type Validator interface {
	ValidateStruct(s any) map[string]string
}

// Check runs v on s and folds the failures into a single error wrapping ErrInvalid.
func Check(v Validator, s any) error {
	errs := v.ValidateStruct(s)
	if len(errs) == 0 {
		return nil
	}

	msgs := make([]string, 0, len(errs))
	for _, field := range slices.Sorted(maps.Keys(errs)) {
		msgs = append(msgs, errs[field])
	}

	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}
