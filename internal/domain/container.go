package domain

import (
	"fmt"
	"regexp"
)

// Represents a single tracked shipping container.
// Records are loaded once at process start from the static dataset and
// never mutated afterwards; every scoring input is a fixed field.
type ContainerRecord struct {
	ContainerID      string
	Carrier          string
	OriginPort       string
	DestinationPort  string
	Vessel           string
	Region           string
	Position         Coordinates
	DistanceNM       float64
	SpeedKts         float64
	CongestionFactor float64
	WindProxy        float64
	NominalHours     float64
}

// CarrierPrefixes maps each supported shipping line to the four-letter
// owner code its container IDs must start with.
var CarrierPrefixes = map[string]string{
	"MSC":         "MSCU",
	"Maersk":      "MAEU",
	"CMA CGM":     "CMAU",
	"COSCO":       "COSU",
	"Hapag-Lloyd": "HLCU",
	"ONE":         "ONEU",
	"Evergreen":   "EGHU",
	"Yang Ming":   "YMLU",
	"HMM":         "HMMU",
	"ZIM":         "ZIMU",
}

var containerIDPattern = regexp.MustCompile(`^[A-Z]{4}[0-9]{7}$`)

// Validate checks the record invariants: ID format, carrier/prefix
// agreement, and numeric field ranges. A violation is reported as
// ErrInvalidRecord; malformed numerics are never defaulted to zero.
func (c *ContainerRecord) Validate() error {
	if !containerIDPattern.MatchString(c.ContainerID) {
		return fmt.Errorf("%w: container %q: id must be 4 letters followed by 7 digits", ErrInvalidRecord, c.ContainerID)
	}

	prefix, ok := CarrierPrefixes[c.Carrier]
	if !ok {
		return fmt.Errorf("%w: container %q: unknown carrier %q", ErrInvalidRecord, c.ContainerID, c.Carrier)
	}
	if c.ContainerID[:4] != prefix {
		return fmt.Errorf(
			"%w: container %q: id prefix does not match carrier %q (want %q)",
			ErrInvalidRecord, c.ContainerID, c.Carrier, prefix,
		)
	}

	if c.DistanceNM <= 0 {
		return fmt.Errorf("%w: container %q: distance_nm must be positive, got %v", ErrInvalidRecord, c.ContainerID, c.DistanceNM)
	}
	if c.SpeedKts <= 0 {
		return fmt.Errorf("%w: container %q: speed_kts must be positive, got %v", ErrInvalidRecord, c.ContainerID, c.SpeedKts)
	}
	if c.CongestionFactor < 0 {
		return fmt.Errorf("%w: container %q: congestion_factor must be non-negative, got %v", ErrInvalidRecord, c.ContainerID, c.CongestionFactor)
	}
	if c.WindProxy < 0 {
		return fmt.Errorf("%w: container %q: wind_proxy must be non-negative, got %v", ErrInvalidRecord, c.ContainerID, c.WindProxy)
	}
	if c.NominalHours <= 0 {
		return fmt.Errorf("%w: container %q: nominal_hours must be positive, got %v", ErrInvalidRecord, c.ContainerID, c.NominalHours)
	}

	return nil
}
