package domain

import (
	"encoding/json"
	"time"
)

const MaxBatchSize = 500

// BatchItem is one element of a mixed submission. Only the type is decoded
// up front; the rest is decoded once the target store is known.
type BatchItem struct {
	Type OpportunityType
	Raw  json.RawMessage
}

func (b *BatchItem) UnmarshalJSON(data []byte) error {
	var head struct {
		Type OpportunityType `json:"type"`
	}
	// an item whose type cannot be read is kept with an empty type and dropped later
	_ = json.Unmarshal(data, &head)
	b.Type = head.Type
	b.Raw = append(b.Raw[:0], data...)
	return nil
}

// BatchRequest is the body of a batch ingestion.
type BatchRequest struct {
	Source        string       `json:"source"`
	Opportunities *[]BatchItem `json:"opportunities"`
}

// Tally counts upsert outcomes.
type Tally struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Failed  int `json:"failed"`
}

func (t *Tally) Record(action Action, err error) {
	switch {
	case err != nil:
		t.Failed++
	case action == ActionCreated:
		t.Created++
	default:
		t.Updated++
	}
}

// BatchSummary holds statistics about a batch ingestion.
type BatchSummary struct {
	Total   int `json:"total"`
	Created int `json:"created"`
	Updated int `json:"updated"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}

// BatchItemError records why one element of a batch was not stored.
type BatchItemError struct {
	Index int             `json:"index"`
	Type  OpportunityType `json:"type"`
	Error string          `json:"error"`
}

type BatchResult struct {
	Source   string                    `json:"source,omitempty"`
	Summary  BatchSummary              `json:"summary"`
	ByType   map[OpportunityType]Tally `json:"byType"`
	Errors   []BatchItemError          `json:"errors,omitempty"`
	Duration time.Duration             `json:"-"`
}
