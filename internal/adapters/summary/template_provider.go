package summary

import (
	"container-tracking-service/internal/domain"
	"fmt"
	"time"
)

// Local template strategy. Purely string formatting over computed
// scores: always succeeds and never touches the network.

// FleetTemplate renders the fleet-level summary sentence.
func FleetTemplate(now time.Time, scored []domain.ScoredContainer) string {
	n := len(scored)
	if n == 0 {
		return "No active shipments."
	}

	onTime := 0
	highRisk := 0
	var hoursSum float64
	worst := scored[0]
	for _, sc := range scored {
		if sc.OnTime {
			onTime++
		}
		if sc.Risk.Tier == domain.RiskHigh {
			highRisk++
		}
		hoursSum += sc.ETA.PredictedHours
		if sc.ETA.PredictedHours > worst.ETA.PredictedHours {
			worst = sc
		}
	}

	return fmt.Sprintf(
		"As of %s, %d shipments; %d (%d%%) on-time. Avg hours to ETA %.1f. High risk: %d. Worst: %s (%s) ~%.1fh.",
		now.UTC().Format("2006-01-02 15:04 UTC"),
		n,
		onTime,
		int(float64(onTime)/float64(n)*100+0.5),
		hoursSum/float64(n),
		highRisk,
		worst.Record.Vessel,
		worst.Record.ContainerID,
		worst.ETA.PredictedHours,
	)
}

// ContainerTemplate renders the per-container summary sentence.
func ContainerTemplate(sc domain.ScoredContainer) string {
	status := "behind schedule"
	if sc.OnTime {
		status = "on schedule"
	}

	return fmt.Sprintf(
		"Container %s (%s) aboard %s from %s to %s is %s: ~%.1fh to arrival (±%.0fh), risk %s (%.2f).",
		sc.Record.ContainerID,
		sc.Record.Carrier,
		sc.Record.Vessel,
		sc.Record.OriginPort,
		sc.Record.DestinationPort,
		status,
		sc.ETA.PredictedHours,
		sc.ETA.PredictedHours-sc.ETA.BandLowHours,
		sc.Risk.Tier,
		sc.Risk.Score,
	)
}
