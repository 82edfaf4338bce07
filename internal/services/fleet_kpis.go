package services

import (
	"container-tracking-service/internal/domain"
	"math"
	"sort"
)

// ComputeFleetKPIs reduces the scored fleet to the dashboard aggregate
// numbers. The empty fleet yields zero values, never NaN; the dataset
// is small and static, so the reduction is recomputed per query.
func ComputeFleetKPIs(scored []domain.ScoredContainer) domain.FleetKPIs {
	kpis := domain.FleetKPIs{ActiveCount: len(scored)}
	if len(scored) == 0 {
		return kpis
	}

	onTime := 0
	var riskSum, absErrSum float64
	for _, sc := range scored {
		if sc.OnTime {
			onTime++
		}
		riskSum += sc.Risk.Score
		absErrSum += math.Abs(sc.ETA.PredictedHours - sc.Record.NominalHours)
	}

	n := float64(len(scored))
	kpis.OnTimePct = 100 * float64(onTime) / n
	kpis.AvgRiskScore = riskSum / n
	kpis.AvgETAErrorHours = absErrSum / n

	return kpis
}

// Delay ratio above which a predicted slip counts as a true positive
// when checking the top predicted delays.
const delayRatioThreshold = 0.10

// ComputeModelMetrics computes model-quality figures live from the
// scored fleet: mean absolute error of predicted vs nominal hours,
// precision of the three largest predicted delays, drift of the mean
// error relative to the mean nominal transit time, and tier counts.
func ComputeModelMetrics(scored []domain.ScoredContainer) domain.ModelMetrics {
	m := domain.ModelMetrics{
		TierCounts: map[domain.RiskTier]int{
			domain.RiskLow:    0,
			domain.RiskMedium: 0,
			domain.RiskHigh:   0,
		},
		SampleSize: len(scored),
	}
	if len(scored) == 0 {
		return m
	}

	type row struct {
		errHours   float64
		delayRatio float64
	}

	rows := make([]row, 0, len(scored))
	var absErrSum, errSum, nominalSum float64
	for _, sc := range scored {
		err := sc.ETA.PredictedHours - sc.Record.NominalHours
		absErrSum += math.Abs(err)
		errSum += err
		nominalSum += sc.Record.NominalHours
		m.TierCounts[sc.Risk.Tier]++

		rows = append(rows, row{
			errHours:   err,
			delayRatio: math.Max(err, 0) / math.Max(sc.Record.NominalHours, 1),
		})
	}

	n := float64(len(rows))
	m.MAEHours = absErrSum / n
	m.DriftRatio = math.Abs(errSum/n) / math.Max(nominalSum/n, 1)

	sort.Slice(rows, func(i, j int) bool { return rows[i].errHours > rows[j].errHours })
	top := rows
	if len(top) > 3 {
		top = top[:3]
	}
	truePositives := 0
	for _, r := range top {
		if r.delayRatio > delayRatioThreshold {
			truePositives++
		}
	}
	m.PrecisionAt3 = float64(truePositives) / 3

	return m
}
