package repositories

import (
	"container-tracking-service/internal/domain"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	query := `
	CREATE TABLE IF NOT EXISTS containers (
		container_id TEXT PRIMARY KEY,
		carrier TEXT NOT NULL,
		origin_port TEXT NOT NULL,
		destination_port TEXT NOT NULL,
		vessel TEXT NOT NULL,
		region TEXT NOT NULL,
		lat REAL NOT NULL,
		lon REAL NOT NULL,
		distance_nm REAL NOT NULL,
		speed_kts REAL NOT NULL,
		congestion_factor REAL NOT NULL,
		wind_proxy REAL NOT NULL,
		nominal_hours REAL NOT NULL
	);
	`

	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("init schema: create containers table: %w", err)
	}

	return nil
}

// ContainerSeed mirrors one entry of the static dataset file.
type ContainerSeed struct {
	ContainerID      string  `json:"container_id"`
	Carrier          string  `json:"carrier"`
	OriginPort       string  `json:"origin_port"`
	DestinationPort  string  `json:"destination_port"`
	Vessel           string  `json:"vessel"`
	Region           string  `json:"region"`
	Lat              float64 `json:"lat"`
	Lon              float64 `json:"lon"`
	DistanceNM       float64 `json:"distance_nm"`
	SpeedKts         float64 `json:"speed_kts"`
	CongestionFactor float64 `json:"congestion_factor"`
	WindProxy        float64 `json:"wind_proxy"`
	NominalHours     float64 `json:"nominal_hours"`
}

// Record converts a seed entry into the domain entity.
func (s ContainerSeed) Record() *domain.ContainerRecord {
	return &domain.ContainerRecord{
		ContainerID:      strings.TrimSpace(s.ContainerID),
		Carrier:          strings.TrimSpace(s.Carrier),
		OriginPort:       s.OriginPort,
		DestinationPort:  s.DestinationPort,
		Vessel:           s.Vessel,
		Region:           s.Region,
		Position:         domain.Coordinates{Lat: s.Lat, Lon: s.Lon},
		DistanceNM:       s.DistanceNM,
		SpeedKts:         s.SpeedKts,
		CongestionFactor: s.CongestionFactor,
		WindProxy:        s.WindProxy,
		NominalHours:     s.NominalHours,
	}
}

// ParseDataset decodes and validates the dataset file contents.
// Duplicate IDs and records violating domain invariants fail fast;
// a partially valid dataset is never loaded.
func ParseDataset(data []byte) ([]*domain.ContainerRecord, error) {
	var seeds []ContainerSeed
	if err := json.Unmarshal(data, &seeds); err != nil {
		return nil, fmt.Errorf("parse dataset: decode json: %w", err)
	}

	seen := make(map[string]struct{}, len(seeds))
	records := make([]*domain.ContainerRecord, 0, len(seeds))
	for i, seed := range seeds {
		rec := seed.Record()
		if err := rec.Validate(); err != nil {
			return nil, fmt.Errorf("parse dataset: entry #%d: %w", i+1, err)
		}
		if _, ok := seen[rec.ContainerID]; ok {
			return nil, fmt.Errorf("parse dataset: entry #%d: duplicate container id %q", i+1, rec.ContainerID)
		}
		seen[rec.ContainerID] = struct{}{}
		records = append(records, rec)
	}

	return records, nil
}

// Populate the SQLite database with container records from the
// dataset file. Used at startup for local runs.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed containers: read %q: %w", jsonPath, err)
	}

	records, err := ParseDataset(bytes)
	if err != nil {
		return fmt.Errorf("seed containers: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed containers: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT OR REPLACE INTO containers (
		container_id,
		carrier,
		origin_port,
		destination_port,
		vessel,
		region,
		lat,
		lon,
		distance_nm,
		speed_kts,
		congestion_factor,
		wind_proxy,
		nominal_hours
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed containers: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		_, err := stmt.Exec(
			r.ContainerID, r.Carrier, r.OriginPort, r.DestinationPort, r.Vessel,
			r.Region, r.Position.Lat, r.Position.Lon, r.DistanceNM, r.SpeedKts,
			r.CongestionFactor, r.WindProxy, r.NominalHours,
		)
		if err != nil {
			return fmt.Errorf("seed containers: insert container_id=%s: %w", r.ContainerID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed containers: commit tx: %w", err)
	}

	return nil
}
