// Package google provides shared plumbing for Google API access: service
// construction, rate limiting and error translation.
package google

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"

	"github.com/meridian-press/curata/internal/core/domain"
)

// WrapError translates a Google API transport error into the ingestion
// error model. Unauthenticated, forbidden and not-found responses all mean
// the source cannot be used, so they map to domain.ErrSourceUnavailable with
// the distinct cause preserved in the message. Other errors pass through.
func WrapError(err error) error {
	if err == nil {
		return nil
	}

	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return err
	}

	switch gerr.Code {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: unauthenticated (invalid or expired credentials)", domain.ErrSourceUnavailable)
	case http.StatusForbidden:
		return fmt.Errorf("%w: forbidden (insufficient permissions)", domain.ErrSourceUnavailable)
	case http.StatusNotFound:
		return fmt.Errorf("%w: not found", domain.ErrSourceUnavailable)
	default:
		return err
	}
}

// IsRateLimited returns true when the error is a 429 response.
func IsRateLimited(err error) bool {
	var gerr *googleapi.Error
	return errors.As(err, &gerr) && gerr.Code == http.StatusTooManyRequests
}

// IsNotFound returns true when the error is a 404 response.
func IsNotFound(err error) bool {
	var gerr *googleapi.Error
	return errors.As(err, &gerr) && gerr.Code == http.StatusNotFound
}
