package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// RawEvent is an unprocessed scenario message read from the source topic.
type RawEvent struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// OutputEvent is a serialized report destined for the sink topic.
type OutputEvent struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}

// ParseScenario decodes and validates a scenario message. A message without
// an "id" field takes its ID from the message key.
func ParseScenario(raw RawEvent) (Scenario, error) {
	var s Scenario
	if err := json.Unmarshal(raw.Value, &s); err != nil {
		return Scenario{}, fmt.Errorf("unmarshal scenario: %w", err)
	}
	if s.ID == "" {
		s.ID = string(raw.Key)
	}
	if s.FaultName == "" {
		s.FaultName = defaultFaultName
	}
	if err := s.Validate(); err != nil {
		return Scenario{}, err
	}
	return s, nil
}

// SerializeReport encodes a report as a sink message keyed by scenario ID.
func SerializeReport(r Report) (OutputEvent, error) {
	value, err := json.Marshal(r)
	if err != nil {
		return OutputEvent{}, fmt.Errorf("marshal report: %w", err)
	}
	return OutputEvent{
		Key:   []byte(r.ScenarioID),
		Value: value,
		Headers: map[string]string{
			"magnitude":    fmt.Sprintf("%.1f", r.Scenario.Magnitude),
			"generated_at": r.GeneratedAt.UTC().Format(time.RFC3339),
		},
	}, nil
}
