package models

import (
	"encoding/json"
	"testing"
)

func TestMarkJSONPending(t *testing.T) {
	data, err := json.Marshal(PendingMark())
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	if string(data) != `"pending"` {
		t.Fatalf("expected \"pending\", got %s", data)
	}

	var m Mark
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if m.Graded {
		t.Fatalf("expected ungraded mark")
	}
}

func TestMarkJSONGraded(t *testing.T) {
	data, err := json.Marshal(GradedMark(72.5))
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	if string(data) != "72.5" {
		t.Fatalf("expected 72.5, got %s", data)
	}

	var m Mark
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if !m.Graded || m.Value != 72.5 {
		t.Fatalf("unexpected mark: %+v", m)
	}
}

func TestMarkJSONLegacyNumericString(t *testing.T) {
	var m Mark
	if err := json.Unmarshal([]byte(`"55"`), &m); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if !m.Graded || m.Value != 55 {
		t.Fatalf("unexpected mark: %+v", m)
	}
}

func TestMarkJSONRejectsGarbage(t *testing.T) {
	var m Mark
	if err := json.Unmarshal([]byte(`"excellent"`), &m); err == nil {
		t.Fatalf("expected error for non-numeric mark string")
	}
}
