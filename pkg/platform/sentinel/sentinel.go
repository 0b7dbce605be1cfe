package sentinel

import "errors"

// Sentinel errors for infrastructure facts. The catalog and stores return
// these (optionally wrapped) so callers can translate them into domain errors.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: entity does not exist (e.g. unknown country name)
// - ErrUnavailable: backing service temporarily unavailable (redis, kafka)
//
// For validation errors (bad input, missing fields), use pkg/domain-errors.
var (
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("unavailable")
)
