package ec2

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

// CatalogUnavailableError reports a failed zone-inventory query. It is
// fatal for the run; the engine never retries it.
type CatalogUnavailableError struct {
	Region string
	Err    error
}

func (e *CatalogUnavailableError) Error() string {
	if code := apiErrorCode(e.Err); code != "" {
		return fmt.Sprintf("zone catalog unavailable for region %s: %s: %v", e.Region, code, e.Err)
	}
	return fmt.Sprintf("zone catalog unavailable for region %s: %v", e.Region, e.Err)
}

func (e *CatalogUnavailableError) Unwrap() error {
	return e.Err
}

// IsCatalogUnavailable reports whether err is a CatalogUnavailableError.
func IsCatalogUnavailable(err error) bool {
	var cue *CatalogUnavailableError
	return errors.As(err, &cue)
}

// apiErrorCode extracts the AWS API error code, e.g. AuthFailure or
// UnauthorizedOperation, when the cause is an API-level error.
func apiErrorCode(err error) string {
	var ae smithy.APIError
	if errors.As(err, &ae) {
		return ae.ErrorCode()
	}
	return ""
}
