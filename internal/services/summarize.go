package services

import (
	"container-tracking-service/internal/adapters/cache"
	"container-tracking-service/internal/adapters/summary"
	"container-tracking-service/internal/domain"
	"container-tracking-service/internal/ports"
	"context"
	"fmt"
	"log"
	"strings"
	"time"
)

const defaultSummaryTimeout = 5 * time.Second

// Summarizer produces narrative text for a container or the fleet.
//
// The template strategy is always available and purely local. When a
// delegated client is configured, it is tried first under a bounded
// timeout; any failure on that path falls back to the template output
// and is never surfaced to the caller. Without a client no network
// call can occur.
type Summarizer struct {
	Client  ports.SummaryClient      // nil selects template-only mode
	Cache   *cache.RedisSummaryCache // optional
	Timeout time.Duration
	Now     func() time.Time // defaults to time.Now
}

// Fleet returns the fleet-level summary.
func (s *Summarizer) Fleet(ctx context.Context, scored []domain.ScoredContainer) string {
	fallback := summary.FleetTemplate(s.now(), scored)
	return s.delegate(ctx, "fleet", fleetPrompt(scored), fallback)
}

// Container returns the summary for one scored container.
func (s *Summarizer) Container(ctx context.Context, sc domain.ScoredContainer) string {
	fallback := summary.ContainerTemplate(sc)
	return s.delegate(ctx, sc.Record.ContainerID, containerPrompt(sc), fallback)
}

func (s *Summarizer) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// delegate runs the delegated strategy with cache and timeout, using
// the template fallback on any failure.
func (s *Summarizer) delegate(ctx context.Context, scope string, prompt string, fallback string) string {
	if s.Client == nil {
		return fallback
	}

	if s.Cache != nil {
		text, hit, err := s.Cache.Get(ctx, scope)
		if err != nil {
			log.Printf("summary cache read failed: %v", err)
		} else if hit {
			return text
		}
	}

	timeout := s.Timeout
	if timeout <= 0 {
		timeout = defaultSummaryTimeout
	}
	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	text, err := s.Client.GenerateText(cctx, prompt)
	if err != nil {
		log.Printf("delegated summary failed (using template): scope=%s err=%v", scope, err)
		return fallback
	}

	if s.Cache != nil {
		if err := s.Cache.Put(ctx, scope, text); err != nil {
			log.Printf("summary cache write failed: %v", err)
		}
	}

	return text
}

func fleetPrompt(scored []domain.ScoredContainer) string {
	kpis := ComputeFleetKPIs(scored)
	return fmt.Sprintf(
		"Write one short status sentence for a shipping dashboard. "+
			"Active containers: %d. On-time: %.0f%%. Average risk score: %.2f. "+
			"Average ETA error: %.1f hours. Plain prose, no markup.",
		kpis.ActiveCount, kpis.OnTimePct, kpis.AvgRiskScore, kpis.AvgETAErrorHours,
	)
}

func containerPrompt(sc domain.ScoredContainer) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write one short status sentence for a shipping dashboard. ")
	fmt.Fprintf(&b, "Container %s, carrier %s, vessel %s, route %s to %s. ",
		sc.Record.ContainerID, sc.Record.Carrier, sc.Record.Vessel,
		sc.Record.OriginPort, sc.Record.DestinationPort)
	fmt.Fprintf(&b, "Predicted hours to arrival: %.1f (nominal %.1f). Risk tier: %s (score %.2f). ",
		sc.ETA.PredictedHours, sc.Record.NominalHours, sc.Risk.Tier, sc.Risk.Score)
	fmt.Fprintf(&b, "Plain prose, no markup.")
	return b.String()
}
