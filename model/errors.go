package model

import "github.com/pkg/errors"

var (
	// ErrInvalidSize is returned when a grid is requested with a size below 1
	ErrInvalidSize = errors.New("invalid grid size")
	// ErrInvalidCoordinate is returned when a seed coordinate lies outside the grid
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	// ErrInvalidDensity is returned when a density falls outside [0, 1]
	ErrInvalidDensity = errors.New("invalid density")
	// ErrInvalidThreshold is returned when a noise threshold falls outside [-1, 1]
	ErrInvalidThreshold = errors.New("invalid noise threshold")
)

func checkSize(size int) error {
	if size <= 0 {
		return errors.Wrapf(ErrInvalidSize, "size must be positive, got %d", size)
	}
	return nil
}
