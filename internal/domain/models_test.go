package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestSubmission_MarshalJSON_FlattensPayload(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := Submission{
		ID:          "id-1",
		Email:       "jane@example.com",
		Fields:      JSONMap{"name": "Jane", "message": "hello", "email": "jane@example.com"},
		SubmittedAt: at,
		IPAddress:   "203.0.113.9",
		UserAgent:   "curl/8",
		Status:      StatusNew,
		UpdatedAt:   at,
	}

	b, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	// Payload fields appear at the top level.
	for _, k := range []string{"name", "message", "email"} {
		if _, ok := out[k]; !ok {
			t.Fatalf("payload field %q missing: %v", k, out)
		}
	}
	// System fields ride alongside.
	if out["id"] != "id-1" || out["status"] != "new" {
		t.Fatalf("system fields wrong: %v", out)
	}
	if out["ip_address"] != "203.0.113.9" || out["user_agent"] != "curl/8" {
		t.Fatalf("client metadata wrong: %v", out)
	}
	if _, err := time.Parse(time.RFC3339Nano, out["submitted_at"].(string)); err != nil {
		t.Fatalf("submitted_at not RFC3339: %v", out["submitted_at"])
	}
}

func TestSubmission_MarshalJSON_SystemFieldsWinCollisions(t *testing.T) {
	s := Submission{
		ID:     "real-id",
		Fields: JSONMap{"id": "spoofed", "status": "spoofed"},
		Status: StatusReplied,
	}
	b, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out["id"] != "real-id" || out["status"] != "replied" {
		t.Fatalf("system fields did not win: %v", out)
	}
}

func TestReservedKeys_CoverSystemFields(t *testing.T) {
	want := map[string]bool{
		"id": true, "submitted_at": true, "ip_address": true,
		"user_agent": true, "status": true, "updated_at": true, "created_at": true,
	}
	if len(ReservedKeys) != len(want) {
		t.Fatalf("ReservedKeys = %v", ReservedKeys)
	}
	for _, k := range ReservedKeys {
		if !want[k] {
			t.Fatalf("unexpected reserved key %q", k)
		}
	}
}
