package services

import (
	"container-tracking-service/internal/adapters/summary"
	"container-tracking-service/internal/domain"
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func summarizerFixture() domain.ScoredContainer {
	rec := testRecord()
	return domain.ScoredContainer{
		Record: rec,
		ETA:    domain.ETAEstimate{PredictedHours: 500, BandLowHours: 494, BandHighHours: 506},
		Risk:   domain.RiskAssessment{Score: 0.2, Tier: domain.RiskLow},
		OnTime: true,
	}
}

func fixedNow() time.Time {
	return time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
}

func TestSummarizerTemplateOnlyMode(t *testing.T) {
	// No client configured: the template strategy answers and no
	// delegated call can happen.
	s := &Summarizer{Now: fixedNow}

	text := s.Container(context.Background(), summarizerFixture())
	if !strings.Contains(text, "MSCU1301003") {
		t.Fatalf("template output missing container id: %q", text)
	}

	fleet := s.Fleet(context.Background(), nil)
	if fleet != "No active shipments." {
		t.Fatalf("empty fleet summary = %q", fleet)
	}
}

func TestSummarizerDelegates(t *testing.T) {
	client := &summary.MockClient{Text: "All shipments nominal."}
	s := &Summarizer{Client: client, Now: fixedNow}

	text := s.Fleet(context.Background(), []domain.ScoredContainer{summarizerFixture()})
	if text != "All shipments nominal." {
		t.Fatalf("delegated output = %q", text)
	}
	if client.Calls != 1 {
		t.Fatalf("client calls = %d, want 1", client.Calls)
	}
}

func TestSummarizerFallsBackOnError(t *testing.T) {
	client := &summary.MockClient{Err: errors.New("upstream unavailable")}
	s := &Summarizer{Client: client, Now: fixedNow}

	sc := summarizerFixture()
	got := s.Container(context.Background(), sc)
	want := s.Container(context.Background(), sc)
	// Both calls failed over to the template, so they must agree.
	if got != want || !strings.Contains(got, "MSCU1301003") {
		t.Fatalf("fallback output = %q", got)
	}
	if client.Calls != 2 {
		t.Fatalf("client calls = %d, want 2", client.Calls)
	}
}

func TestSummarizerFallsBackOnTimeout(t *testing.T) {
	client := &summary.MockClient{Text: "too slow", Delay: time.Second}
	s := &Summarizer{Client: client, Timeout: 10 * time.Millisecond, Now: fixedNow}

	start := time.Now()
	text := s.Fleet(context.Background(), []domain.ScoredContainer{summarizerFixture()})
	elapsed := time.Since(start)

	if text == "too slow" {
		t.Fatalf("timed-out delegated output was used")
	}
	if !strings.Contains(text, "1 shipments") {
		t.Fatalf("fallback output = %q", text)
	}
	if elapsed > 500*time.Millisecond {
		t.Fatalf("timeout was not enforced: took %v", elapsed)
	}
}

func TestFleetTemplateAggregates(t *testing.T) {
	late := summarizerFixture()
	late.Record = testRecord()
	late.Record.ContainerID = "MSCU1301004"
	late.Record.Vessel = "MSC Gulsun"
	late.ETA.PredictedHours = 620
	late.OnTime = false
	late.Risk = domain.RiskAssessment{Score: 0.85, Tier: domain.RiskHigh}

	text := summary.FleetTemplate(fixedNow(), []domain.ScoredContainer{summarizerFixture(), late})

	for _, want := range []string{
		"2 shipments",
		"1 (50%) on-time",
		"High risk: 1",
		"MSC Gulsun",
		"MSCU1301004",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("fleet template %q missing %q", text, want)
		}
	}
}
