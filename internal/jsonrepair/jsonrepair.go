package jsonrepair

import (
	"encoding/json"
	"fmt"

	"github.com/kaptinlin/jsonrepair"
)

// ParseAs unmarshals raw into T, repairing it first if the strict parse
// fails. It is the last-resort path for tool-input JSON arriving as a
// partial or malformed fragment from the upstream runtime.
func ParseAs[T any](raw string) (T, error) {
	var out T

	if err := json.Unmarshal([]byte(raw), &out); err == nil {
		return out, nil
	}

	repaired, err := jsonrepair.JSONRepair(raw)
	if err != nil {
		return out, fmt.Errorf("jsonrepair: repair failed: %w", err)
	}

	if err := json.Unmarshal([]byte(repaired), &out); err != nil {
		return out, fmt.Errorf("jsonrepair: repaired JSON still invalid: %w", err)
	}
	return out, nil
}

// Repair returns raw's best-effort repaired form without parsing it,
// used when the caller only needs valid JSON text (e.g. to re-stringify
// into a tool-input-delta chunk) rather than a typed value.
func Repair(raw string) (string, error) {
	if json.Valid([]byte(raw)) {
		return raw, nil
	}
	repaired, err := jsonrepair.JSONRepair(raw)
	if err != nil {
		return "", fmt.Errorf("jsonrepair: repair failed: %w", err)
	}
	return repaired, nil
}
