// Package validator wraps go-playground/validator with the project's error
// formatting and a couple of custom tags used by the configuration:
//
//   - hexselector: a 4-byte function selector written as 0x followed by 8 hex digits
//   - rpcendpoint: an absolute URL with an http, https, ws or wss scheme
package validator

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"slices"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is returned as the first error in a multi-error chain when validation fails.
var ErrValidationFailed = errors.New("struct validation failed")

var validator *gvalidator.Validate

var selectorPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{8}$`)

var rpcSchemes = []string{"http", "https", "ws", "wss"}

// Example: "'RPCEndpoint': value 'ftp://x' does not meet the requirements for the 'rpcendpoint' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())

	if err := validator.RegisterValidation("hexselector", isHexSelector); err != nil {
		panic(err)
	}

	if err := validator.RegisterValidation("rpcendpoint", isRPCEndpoint); err != nil {
		panic(err)
	}
}

func isHexSelector(fl gvalidator.FieldLevel) bool {
	return selectorPattern.MatchString(fl.Field().String())
}

func isRPCEndpoint(fl gvalidator.FieldLevel) bool {
	u, err := url.Parse(fl.Field().String())
	if err != nil || u.Host == "" {
		return false
	}

	return slices.Contains(rpcSchemes, u.Scheme)
}

// formatError turns validator errors into ErrValidationFailed joined with one
// message per failing field. Other errors are returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		err := fmt.Errorf(errStringFormat,
			validationErr.Field(),
			validationErr.Value(),
			validationErr.Tag(),
		)

		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Validate checks if the given struct satisfies its validation tags.
//
// It returns nil if all fields pass validation. Otherwise, it returns a combined error that includes
// ErrValidationFailed and one formatted message for each field that failed validation.
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
