package services

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCity is returned for a blank or missing city name.
	ErrInvalidCity = errors.New("city name is required")
	// ErrCityNotFound matches any *NotFoundError.
	ErrCityNotFound = errors.New("city not found")
	// ErrUpstream matches any *UpstreamError.
	ErrUpstream = errors.New("upstream unavailable")
)

// NotFoundError means geocoding succeeded but returned no candidates.
type NotFoundError struct {
	City string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("city %q not found", e.City)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrCityNotFound
}

// UpstreamError wraps a failed call to the geocoding or forecast service.
type UpstreamError struct {
	Service string
	Err     error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s service unavailable: %v", e.Service, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstream
}
