package summary

import (
	"context"
	"time"
)

// Scripted SummaryClient for tests.
type MockClient struct {
	Text  string
	Err   error
	Delay time.Duration
	Calls int
}

func (m *MockClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	m.Calls++

	if m.Delay > 0 {
		timer := time.NewTimer(m.Delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return "", ctx.Err()
		case <-timer.C:
		}
	}

	if m.Err != nil {
		return "", m.Err
	}
	return m.Text, nil
}
