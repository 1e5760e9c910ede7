// Package parser normalizes the two response envelopes the remote API
// serves into plain day lists. Which envelope arrives depends on the query
// mode, so callers never get to know or care.
package parser

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/fijnedagvan/dagvan/internal/logger"
	"github.com/fijnedagvan/dagvan/internal/models"
)

// daysTable is the index-2 element of the wrapped "table" envelope.
type daysTable struct {
	Name string       `json:"name"`
	Data []models.Day `json:"data"`
}

// Days decodes raw response text into a day list. It never fails: any
// input that matches neither envelope yields an empty list, with the
// failure kind logged.
//
// Attempts, first success wins:
//  1. a flat array of day objects, accepted only when non-empty and the
//     first element carries a dag_id (guards against a decode that
//     type-checked but is structurally the wrong shape);
//  2. a heterogeneous top-level array of more than two elements whose
//     index-2 element is an object with a "data" field holding the days.
func Days(raw []byte) []models.Day {
	if len(bytes.TrimSpace(raw)) == 0 {
		logger.Warn("parser: input is blank, nothing to parse")
		return nil
	}

	var flat []models.Day
	if err := json.Unmarshal(raw, &flat); err == nil {
		if len(flat) > 0 && flat[0].DayID != "" {
			logger.Debug("parser: decoded flat day list", "count", len(flat))
			return flat
		}
	}

	var envelope []json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil && len(envelope) > 2 {
		var table daysTable
		if err := json.Unmarshal(envelope[2], &table); err == nil {
			logger.Debug("parser: decoded wrapped table envelope", "table", table.Name, "count", len(table.Data))
			return table.Data
		}
		logger.Error("parser: wrapped envelope element 2 is not a day table")
		return nil
	}

	logger.Error("parser: input matched neither the flat nor the wrapped envelope")
	return nil
}

// FunFacts decodes raw response text into a fun-fact list. Like Days it
// recovers from any malformed input with an empty list.
func FunFacts(raw []byte) []models.FunFact {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	var facts []models.FunFact
	if err := json.Unmarshal(raw, &facts); err != nil {
		logger.Error("parser: fun fact list did not decode", "error", err)
		return nil
	}
	return facts
}

// Day strictly decodes a single serialized day, as carried in scheduled
// job payloads. A decode failure here is a payload-comprehension problem
// and must surface to the caller.
func Day(raw []byte) (models.Day, error) {
	var day models.Day
	if err := json.Unmarshal(raw, &day); err != nil {
		return models.Day{}, fmt.Errorf("failed to decode day payload: %w", err)
	}
	return day, nil
}
