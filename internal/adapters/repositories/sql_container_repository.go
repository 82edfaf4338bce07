package repositories

import (
	"container-tracking-service/internal/domain"
	"container-tracking-service/internal/platform/obs"
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Postgres flavor of the ContainerRepository port, for deployments
// where the dataset is shared across instances (see cmd/dbtool).
type SQLContainerRepository struct{ DB *sql.DB }

func NewSQLContainerRepository(db *sql.DB) *SQLContainerRepository {
	return &SQLContainerRepository{DB: db}
}

func (s *SQLContainerRepository) ListContainers(ctx context.Context) (_ []*domain.ContainerRecord, err error) {
	defer obs.Time(ctx, "repo.ListContainers")(&err)

	if s.DB == nil {
		return nil, errors.New("sql container repository: DB is nil")
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

func (s *SQLContainerRepository) GetContainer(ctx context.Context, containerID string) (_ *domain.ContainerRecord, err error) {
	defer obs.Time(ctx, "repo.GetContainer")(&err)

	if s.DB == nil {
		return nil, errors.New("sql container repository: DB is nil")
	}

	query := `SELECT ` + containerColumns + ` FROM containers WHERE container_id = $1;`
	rec, err := scanContainer(s.DB.QueryRowContext(ctx, query, containerID).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get container %q: %w", containerID, domain.ErrUnknownContainer)
	}
	if err != nil {
		return nil, fmt.Errorf("get container %q: %w", containerID, err)
	}

	return rec, nil
}
