package core

import (
	"context"
	"errors"
	"testing"
)

func TestParseOrRepairValidJSON(t *testing.T) {
	backend := &stubBackend{}

	got, err := ParseOrRepair(context.Background(), `{"screens": []}`, backend)
	if err != nil {
		t.Fatalf("ParseOrRepair() error = %v", err)
	}
	if string(got) != `{"screens": []}` {
		t.Errorf("payload = %s", got)
	}
	// Valid payloads must never cost a backend call.
	if backend.callCount() != 0 {
		t.Errorf("backend calls = %d, want 0", backend.callCount())
	}
}

func TestParseOrRepairOneRound(t *testing.T) {
	backend := &stubBackend{rules: []stubRule{
		{match: repairMarker, reply: "Fixed it:\n```json\n{\"screens\": []}\n```"},
	}}

	got, err := ParseOrRepair(context.Background(), `{"screens": [],}`, backend)
	if err != nil {
		t.Fatalf("ParseOrRepair() error = %v", err)
	}
	if string(got) != `{"screens": []}` {
		t.Errorf("payload = %s", got)
	}
	if backend.callCount() != 1 {
		t.Errorf("backend calls = %d, want 1", backend.callCount())
	}
}

func TestParseOrRepairSecondFailureTerminal(t *testing.T) {
	backend := &stubBackend{rules: []stubRule{
		{match: repairMarker, reply: "still {broken"},
	}}

	_, err := ParseOrRepair(context.Background(), `{broken`, backend)
	var mpe *MalformedPayloadError
	if !errors.As(err, &mpe) {
		t.Fatalf("ParseOrRepair() error = %v, want MalformedPayloadError", err)
	}
	if mpe.Stage != "json-repair" {
		t.Errorf("Stage = %q, want json-repair", mpe.Stage)
	}
	if mpe.LastPayload != "still {broken" {
		t.Errorf("LastPayload = %q", mpe.LastPayload)
	}
	// Exactly one repair attempt, never two.
	if backend.callCount() != 1 {
		t.Errorf("backend calls = %d, want 1", backend.callCount())
	}
}

func TestParseOrRepairBackendError(t *testing.T) {
	wantErr := errors.New("backend down")
	backend := &stubBackend{failAll: wantErr}

	_, err := ParseOrRepair(context.Background(), `{broken`, backend)
	if !errors.Is(err, wantErr) {
		t.Fatalf("ParseOrRepair() error = %v, want %v", err, wantErr)
	}
}
