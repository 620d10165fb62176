package core

import "errors"

// Error taxonomy shared by every stage of the pipeline. Packages wrap these
// with detail via fmt.Errorf("%w: ...", ErrX); callers match with errors.Is.
var (
	// ErrInvalidInput reports malformed or inconsistent numeric parameters.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidNoiseType reports an unrecognized noise model tag.
	ErrInvalidNoiseType = errors.New("invalid noise type")

	// ErrInvalidFilterType reports an unrecognized filter family or pass tag.
	ErrInvalidFilterType = errors.New("invalid filter type")

	// ErrDegenerateInput reports inputs for which a metric is undefined,
	// such as a zero noise power in an SNR ratio.
	ErrDegenerateInput = errors.New("degenerate input")
)
