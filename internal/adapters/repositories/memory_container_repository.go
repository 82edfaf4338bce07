package repositories

import (
	"container-tracking-service/internal/domain"
	"context"
	"fmt"
)

// In-memory ContainerRepository used in tests.
type MemoryContainerRepository struct {
	records []*domain.ContainerRecord
}

func NewMemoryContainerRepository(records ...*domain.ContainerRecord) *MemoryContainerRepository {
	return &MemoryContainerRepository{records: records}
}

func (m *MemoryContainerRepository) ListContainers(ctx context.Context) ([]*domain.ContainerRecord, error) {
	out := make([]*domain.ContainerRecord, len(m.records))
	copy(out, m.records)
	return out, nil
}

func (m *MemoryContainerRepository) GetContainer(ctx context.Context, containerID string) (*domain.ContainerRecord, error) {
	for _, rec := range m.records {
		if rec.ContainerID == containerID {
			return rec, nil
		}
	}
	return nil, fmt.Errorf("get container %q: %w", containerID, domain.ErrUnknownContainer)
}
