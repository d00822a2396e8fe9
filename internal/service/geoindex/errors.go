package geoindex

import "errors"

var (
	ErrInvalidOrigin       = errors.New("invalid origin location")
	ErrNoEligibleCandidate = errors.New("no eligible candidate")
)
