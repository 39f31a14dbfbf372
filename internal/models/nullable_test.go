package models

import (
	"encoding/json"
	"testing"
)

func TestNullableString_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		json      string
		wantSet   bool
		wantValid bool
		wantValue string
	}{
		{
			name:      "field present with string value",
			json:      `{"mood": "Focused"}`,
			wantSet:   true,
			wantValid: true,
			wantValue: "Focused",
		},
		{
			name:      "field present with null value",
			json:      `{"mood": null}`,
			wantSet:   true,
			wantValid: false,
			wantValue: "",
		},
		{
			name:      "field absent",
			json:      `{}`,
			wantSet:   false,
			wantValid: false,
			wantValue: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var result struct {
				Mood NullableString `json:"mood"`
			}
			if err := json.Unmarshal([]byte(tt.json), &result); err != nil {
				t.Fatalf("Unmarshal error: %v", err)
			}

			if result.Mood.Set != tt.wantSet {
				t.Errorf("Set = %v, want %v", result.Mood.Set, tt.wantSet)
			}
			if result.Mood.Valid != tt.wantValid {
				t.Errorf("Valid = %v, want %v", result.Mood.Valid, tt.wantValid)
			}
			if result.Mood.Value != tt.wantValue {
				t.Errorf("Value = %q, want %q", result.Mood.Value, tt.wantValue)
			}
		})
	}
}

func TestNullableString_Apply(t *testing.T) {
	current := StringPtr("Tired")

	absent := NullableString{}
	if got := absent.Apply(current); got != current {
		t.Errorf("absent field should keep current value, got %v", got)
	}

	cleared := NullableString{Set: true}
	if got := cleared.Apply(current); got != nil {
		t.Errorf("null field should clear value, got %q", *got)
	}

	replaced := NullableString{Set: true, Valid: true, Value: "Relaxed"}
	got := replaced.Apply(current)
	if got == nil || *got != "Relaxed" {
		t.Errorf("expected Relaxed, got %v", got)
	}
}
