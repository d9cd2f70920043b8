// Package validatorx holds the process-wide request validator and the
// custom rules the API surface depends on.
package validatorx

import (
	"regexp"
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex

	// Shop slugs become URL path segments, so they are restricted to
	// lowercase words separated by single hyphens.
	slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// Init initializes the validator singleton (idempotent)
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	v = gpvalidator.New()
	_ = v.RegisterValidation("slug", func(fl gpvalidator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	return v.Struct(s)
}
