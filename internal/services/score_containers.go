package services

import (
	"container-tracking-service/internal/domain"
	"container-tracking-service/internal/ports"
	"context"
	"errors"
	"fmt"
	"log"
)

// Scorer runs the ETA and risk models over the container repository.
// It holds no mutable state; every call is a pure mapping from the
// read-only dataset to derived values.
type Scorer struct {
	Repo    ports.ContainerRepository
	Weights ModelWeights
	Risk    RiskTable
}

// ScoreAll scores every record in the dataset.
// Invalid records are logged and skipped so that downstream aggregates
// only ever reflect successfully scored records.
func (s *Scorer) ScoreAll(ctx context.Context) ([]domain.ScoredContainer, error) {
	recs, err := s.Repo.ListContainers(ctx)
	if err != nil {
		return nil, fmt.Errorf("score all: list containers: %w", err)
	}

	scored := make([]domain.ScoredContainer, 0, len(recs))
	for _, rec := range recs {
		sc, err := s.score(rec)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidRecord) {
				log.Printf("skipping container: %v", err)
				continue
			}
			return nil, fmt.Errorf("score all: %w", err)
		}
		scored = append(scored, sc)
	}

	return scored, nil
}

// ScoreOne resolves and scores a single container by ID.
// An absent ID surfaces as domain.ErrUnknownContainer.
func (s *Scorer) ScoreOne(ctx context.Context, containerID string) (domain.ScoredContainer, error) {
	rec, err := s.Repo.GetContainer(ctx, containerID)
	if err != nil {
		return domain.ScoredContainer{}, fmt.Errorf("score one: %w", err)
	}

	sc, err := s.score(rec)
	if err != nil {
		return domain.ScoredContainer{}, fmt.Errorf("score one: %w", err)
	}
	return sc, nil
}

func (s *Scorer) score(rec *domain.ContainerRecord) (domain.ScoredContainer, error) {
	eta, err := ComputeETA(rec, s.Weights)
	if err != nil {
		return domain.ScoredContainer{}, err
	}

	risk := ComputeRisk(rec, eta, s.Risk.Prior(rec.Region), s.Weights)
	onTime := eta.PredictedHours <= rec.NominalHours*(1+s.Weights.OnTimeTolerance)

	return domain.ScoredContainer{
		Record: rec,
		ETA:    eta,
		Risk:   risk,
		OnTime: onTime,
	}, nil
}
