package isomodel

import "errors"

var (
	// ErrInvalidFloorArea indicates a building whose floor area is zero or negative.
	ErrInvalidFloorArea = errors.New("isomodel: floor area must be positive")

	// ErrWeatherLength indicates a weather series that does not cover one year of hours.
	ErrWeatherLength = errors.New("isomodel: weather data must have 8760 rows")

	// ErrWeatherMethod indicates an unknown weather construction method.
	ErrWeatherMethod = errors.New("isomodel: unknown weather method")

	// ErrLightingControl indicates a lighting control mode outside 1..4.
	ErrLightingControl = errors.New("isomodel: lighting control must be 1, 2, 3 or 4")

	// ErrSystemEfficiency indicates a heating efficiency or cooling COP that is not positive.
	ErrSystemEfficiency = errors.New("isomodel: heating efficiency and cooling cop must be positive")

	// ErrOccupancyWindow indicates occupancy bounds outside the 24 hour x 7 day grid.
	ErrOccupancyWindow = errors.New("isomodel: occupancy window out of range")

	// ErrBuildingFetch indicates a building URL that answered with a non-2xx status.
	ErrBuildingFetch = errors.New("isomodel: failed to fetch building json")
)
