package models

// Settings represents the application configuration
type Settings struct {
	Output OutputSettings `yaml:"output"`
	Editor EditorSettings `yaml:"editor"`
}

// OutputSettings controls page export behavior
type OutputSettings struct {
	DefaultFilename string `yaml:"default_filename"`
	ExportPath      string `yaml:"export_path"`
	ShowTabHeading  bool   `yaml:"show_tab_heading"`
}

// EditorSettings controls editor preferences
type EditorSettings struct {
	AutosaveSeconds int  `yaml:"autosave_seconds"`
	ShowPreview     bool `yaml:"show_preview"`
	ConfirmDeletes  bool `yaml:"confirm_deletes"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Output: OutputSettings{
			DefaultFilename: "PAGE.md",
			ExportPath:      "./",
			ShowTabHeading:  true,
		},
		Editor: EditorSettings{
			AutosaveSeconds: 10,
			ShowPreview:     true,
			ConfirmDeletes:  true,
		},
	}
}

// Normalize fills in zero values that would make the editor unusable, such as
// a missing autosave interval on settings loaded from an older file.
func (s *Settings) Normalize() {
	if s.Editor.AutosaveSeconds <= 0 {
		s.Editor.AutosaveSeconds = 10
	}
	if s.Output.DefaultFilename == "" {
		s.Output.DefaultFilename = "PAGE.md"
	}
	if s.Output.ExportPath == "" {
		s.Output.ExportPath = "./"
	}
}
