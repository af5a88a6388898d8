package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrCityNotFound       = errors.New("city not found")
	ErrNoCity             = errors.New("no city given and no home city saved")
	ErrPreferenceNotFound = errors.New("user preference not found")
)

// CityNotFoundCode is the weather API error code for an unknown location.
const CityNotFoundCode = 1006

// UpstreamError is a structured error returned by the weather API.
type UpstreamError struct {
	Status  int
	Code    int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("weather api: status %d, code %d: %s", e.Status, e.Code, e.Message)
}

// Unwrap lets errors.Is match ErrCityNotFound for the unknown-location code.
func (e *UpstreamError) Unwrap() error {
	if e.Code == CityNotFoundCode {
		return ErrCityNotFound
	}
	return nil
}

// UpstreamCode extracts the weather API error code from err, if any.
func UpstreamCode(err error) (int, bool) {
	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		return upErr.Code, true
	}
	return 0, false
}
