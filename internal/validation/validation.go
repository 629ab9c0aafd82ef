// Package validation checks request records before they reach the store.
package validation

import (
	"errors"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *validator.Validate
)

// FieldErrors lists every field that failed validation, by JSON name
type FieldErrors struct {
	Fields []string
}

func (e *FieldErrors) Error() string {
	return "missing or invalid fields: " + strings.Join(e.Fields, ", ")
}

func engine() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// Struct validates v against its `validate` tags.
// "required" rejects empty strings and zero numbers alike, so a zero age or
// price counts as missing. A failure is returned as *FieldErrors.
func Struct(v any) error {
	err := engine().Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	seen := make(map[string]struct{}, len(verrs))
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if _, ok := seen[fe.Field()]; ok {
			continue
		}
		seen[fe.Field()] = struct{}{}
		fields = append(fields, fe.Field())
	}
	sort.Strings(fields)

	return &FieldErrors{Fields: fields}
}

// NormalizeName trims leading and trailing whitespace from a patient name
// before it is compared with the (also trimmed) stored names.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}
