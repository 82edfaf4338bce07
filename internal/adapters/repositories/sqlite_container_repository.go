package repositories

import (
	"container-tracking-service/internal/domain"
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SQLite-backed implementation of the ContainerRepository port.
type SqliteContainerRepository struct{ DB *sql.DB }

func NewSqliteContainerRepository(db *sql.DB) *SqliteContainerRepository {
	return &SqliteContainerRepository{DB: db}
}

const containerColumns = `
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
`

func scanContainer(scan func(dest ...any) error) (*domain.ContainerRecord, error) {
	var rec domain.ContainerRecord
	err := scan(
		&rec.ContainerID, &rec.Carrier, &rec.OriginPort, &rec.DestinationPort,
		&rec.Vessel, &rec.Region, &rec.Position.Lat, &rec.Position.Lon,
		&rec.DistanceNM, &rec.SpeedKts, &rec.CongestionFactor, &rec.WindProxy,
		&rec.NominalHours,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Return all container records ordered by ID.
func (s *SqliteContainerRepository) ListContainers(ctx context.Context) ([]*domain.ContainerRecord, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite container repository: DB is nil")
	}

	query := `SELECT ` + containerColumns + ` FROM containers ORDER BY container_id;`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list containers: query containers table: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.ContainerRecord, 0, 128)
	for rows.Next() {
		rec, err := scanContainer(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("list containers: scan row: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list containers: row iteration: %w", err)
	}

	return records, nil
}

// Return a single record by container ID.
func (s *SqliteContainerRepository) GetContainer(ctx context.Context, containerID string) (*domain.ContainerRecord, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite container repository: DB is nil")
	}

	query := `SELECT ` + containerColumns + ` FROM containers WHERE container_id = ?;`
	rec, err := scanContainer(s.DB.QueryRowContext(ctx, query, containerID).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get container %q: %w", containerID, domain.ErrUnknownContainer)
	}
	if err != nil {
		return nil, fmt.Errorf("get container %q: %w", containerID, err)
	}

	return rec, nil
}
