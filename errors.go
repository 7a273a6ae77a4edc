package bloomlab

import "errors"

var (
	// ErrInvalidSweep is returned when a sweep's parameters cannot produce
	// a single measurement.
	ErrInvalidSweep = errors.New("bloomlab: invalid sweep parameters")

	// ErrDataset is returned when a synthetic dataset cannot be generated.
	ErrDataset = errors.New("bloomlab: dataset generation failed")
)
