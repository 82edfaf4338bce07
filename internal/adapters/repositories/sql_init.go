package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
)

// Initialize the Postgres schema. Used by cmd/dbtool.
func InitSchemaPostgres(db *sql.DB) error {
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
		lat DOUBLE PRECISION NOT NULL,
		lon DOUBLE PRECISION NOT NULL,
		distance_nm DOUBLE PRECISION NOT NULL,
		speed_kts DOUBLE PRECISION NOT NULL,
		congestion_factor DOUBLE PRECISION NOT NULL,
		wind_proxy DOUBLE PRECISION NOT NULL,
		nominal_hours DOUBLE PRECISION NOT NULL
	);
	`

	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("init schema: create containers table: %w", err)
	}

	return nil
}

// Populate the Postgres database with container records from the
// dataset file.
func SeedFromJSONPostgres(db *sql.DB, jsonPath string) error {
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
	INSERT INTO containers (
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
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	ON CONFLICT (container_id) DO UPDATE
	SET carrier = EXCLUDED.carrier,
		origin_port = EXCLUDED.origin_port,
		destination_port = EXCLUDED.destination_port,
		vessel = EXCLUDED.vessel,
		region = EXCLUDED.region,
		lat = EXCLUDED.lat,
		lon = EXCLUDED.lon,
		distance_nm = EXCLUDED.distance_nm,
		speed_kts = EXCLUDED.speed_kts,
		congestion_factor = EXCLUDED.congestion_factor,
		wind_proxy = EXCLUDED.wind_proxy,
		nominal_hours = EXCLUDED.nominal_hours;
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
