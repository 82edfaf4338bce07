package ports

import (
	"container-tracking-service/internal/domain"
	"context"
)

// Port: a boundary for retrieving ContainerRecord entities from a data source.
type ContainerRepository interface {
	// Retrieve all container records in the dataset.
	ListContainers(ctx context.Context) ([]*domain.ContainerRecord, error)

	// Retrieve one record by its container ID.
	// An absent ID is reported as domain.ErrUnknownContainer.
	GetContainer(ctx context.Context, containerID string) (*domain.ContainerRecord, error)
}
