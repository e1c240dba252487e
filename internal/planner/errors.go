package planner

import "errors"

// Sentinel errors returned by the generation pipeline. Callers should match
// against these values with [errors.Is]; the HTTP layer maps them onto
// validation (400) and upstream-failure (502) responses.
var (
	// ErrInvalidDateRange is returned when a filter request's to_date
	// precedes its from_date, which would make the inclusive duration
	// non-positive.
	ErrInvalidDateRange = errors.New("to_date must not precede from_date")

	// ErrMissingDates is returned when a filter request omits from_date or
	// to_date. Two zero dates compare equal, so without this check a
	// dateless request would read as a one-day trip anchored at year 1.
	ErrMissingDates = errors.New("from_date and to_date are required")

	// ErrCompletionFailed is returned when the upstream model call itself
	// fails (transport error, provider error, or an empty choice list).
	ErrCompletionFailed = errors.New("upstream completion failed")

	// ErrUnparsableResponse is returned when the model's output cannot be
	// decoded into the package schema, even after bounded textual repair.
	// The raw text is never evaluated or substituted with fabricated data.
	ErrUnparsableResponse = errors.New("model response is not valid package JSON")

	// ErrNoPackages is returned when the model output decodes cleanly but
	// contains no packages at all.
	ErrNoPackages = errors.New("model response contains no packages")
)
