package core

import (
	"context"
	"encoding/json"

	"github.com/dhabedank/prd-analyzer/internal/llm"
)

// ParseOrRepair parses payload as JSON. On failure it makes exactly
// one repair round-trip: the invalid text goes back to the backend
// with a correction prompt, the response is fence-extracted and parsed
// again. A second parse failure is terminal. Valid payloads never cost
// a backend call.
func ParseOrRepair(ctx context.Context, payload string, backend llm.Backend) (json.RawMessage, error) {
	var probe interface{}
	if err := json.Unmarshal([]byte(payload), &probe); err == nil {
		return json.RawMessage(payload), nil
	}

	raw, err := backend.Generate(ctx, BuildRepairPrompt(payload))
	if err != nil {
		return nil, err
	}

	repaired := ExtractFenced(raw, FenceJSON)
	if err := json.Unmarshal([]byte(repaired), &probe); err != nil {
		return nil, &MalformedPayloadError{
			Stage:       "json-repair",
			LastPayload: repaired,
			Err:         err,
		}
	}

	return json.RawMessage(repaired), nil
}
