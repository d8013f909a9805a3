package models

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestElementJSONRoundTrip(t *testing.T) {
	el := Element{
		ID: "el-1",
		Data: &HeadingData{
			Text:  "Quarterly results",
			Level: 3,
		},
	}

	b, err := json.Marshal(el)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(b), `"kind":"heading"`) {
		t.Errorf("expected flat kind discriminator, got %s", b)
	}

	var decoded Element
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.ID != "el-1" {
		t.Errorf("id = %q, want el-1", decoded.ID)
	}
	heading, ok := decoded.Data.(*HeadingData)
	if !ok {
		t.Fatalf("payload type = %T, want *HeadingData", decoded.Data)
	}
	if heading.Text != "Quarterly results" || heading.Level != 3 {
		t.Errorf("payload = %+v", heading)
	}
}

func TestElementDecodeAppliesDefaults(t *testing.T) {
	// A stored heading with no level field gets the documented default of 2.
	var el Element
	if err := json.Unmarshal([]byte(`{"id":"h1","kind":"heading","text":"hi"}`), &el); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	heading := el.Data.(*HeadingData)
	if heading.Level != 2 {
		t.Errorf("level = %d, want default 2", heading.Level)
	}

	var rating Element
	if err := json.Unmarshal([]byte(`{"id":"r1","kind":"rating","question":"How was it?"}`), &rating); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	data := rating.Data.(*RatingData)
	if data.Max != 5 || data.Icon != "star" {
		t.Errorf("rating defaults = %+v", data)
	}
}

func TestElementDecodeUnknownKind(t *testing.T) {
	var el Element
	err := json.Unmarshal([]byte(`{"id":"x","kind":"hologram"}`), &el)
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("err = %v, want ErrUnknownKind", err)
	}
}

func TestDefaultDataCoversEveryKind(t *testing.T) {
	for _, kind := range Kinds() {
		data := DefaultData(kind)
		if data == nil {
			t.Fatalf("DefaultData(%q) returned nil", kind)
		}
		if data.Kind() != kind {
			t.Errorf("DefaultData(%q).Kind() = %q", kind, data.Kind())
		}
	}
	if len(Kinds()) != 21 {
		t.Errorf("registered kinds = %d, want 21", len(Kinds()))
	}
}

func TestDefaultDataPanicsOnUnknownKind(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unregistered kind")
		}
	}()
	DefaultData(ElementKind("hologram"))
}

func TestMergeData(t *testing.T) {
	data := DefaultData(KindKPI)

	merged, err := MergeData(data, map[string]any{
		"label": "Revenue",
		"value": "$1.2M",
		"trend": "up",
		"kind":  "text", // must be ignored
	})
	if err != nil {
		t.Fatalf("merge: %v", err)
	}

	kpi, ok := merged.(*KPIData)
	if !ok {
		t.Fatalf("merged type = %T, want *KPIData", merged)
	}
	if kpi.Label != "Revenue" || kpi.Value != "$1.2M" || kpi.Trend != "up" {
		t.Errorf("merged = %+v", kpi)
	}
	// Untouched fields keep their previous values.
	if kpi.Theme != "blue" {
		t.Errorf("theme = %q, want blue", kpi.Theme)
	}
}
