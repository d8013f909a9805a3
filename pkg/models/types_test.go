package models

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercase", "Overview", "overview"},
		{"punctuation collapsed", "My Cool Tab!!", "my-cool-tab"},
		{"inner runs", "Q3 -- Results", "q3-results"},
		{"leading and trailing", "  hello  ", "hello"},
		{"only whitespace", "  ", ""},
		{"numbers kept", "2026 Roadmap", "2026-roadmap"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.input); got != tt.expected {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestColumnsForLayout(t *testing.T) {
	tests := []struct {
		layout Layout
		want   int
	}{
		{LayoutSingle, 1},
		{LayoutDouble, 2},
		{LayoutTriple, 3},
		{Layout("bogus"), 1},
	}

	for _, tt := range tests {
		if got := ColumnsForLayout(tt.layout); got != tt.want {
			t.Errorf("ColumnsForLayout(%q) = %d, want %d", tt.layout, got, tt.want)
		}
	}
}

func TestEffectiveSettings(t *testing.T) {
	col := Column{ID: "c1"}
	if got := col.EffectiveSettings(); got != DefaultColumnSettings() {
		t.Errorf("missing settings should resolve to defaults, got %+v", got)
	}

	custom := ColumnSettings{Background: "color", Color: "#fff1e6", Padding: 24}
	col.Settings = &custom
	if got := col.EffectiveSettings(); got != custom {
		t.Errorf("EffectiveSettings = %+v, want %+v", got, custom)
	}
}

func TestCountElements(t *testing.T) {
	sections := []Section{
		{Columns: []Column{
			{Elements: []Element{{ID: "a"}, {ID: "b"}}},
			{Elements: []Element{{ID: "c"}}},
		}},
		{Columns: []Column{{}}},
	}
	if got := CountElements(sections); got != 3 {
		t.Errorf("CountElements = %d, want 3", got)
	}
}
