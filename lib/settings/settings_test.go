package settings

import (
	"testing"
)

func TestReadConfigDefaults(t *testing.T) {
	s, err := ReadConfig(`{}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Port != "9002" {
		t.Errorf("got port %q, want 9002", s.Port)
	}
	if s.ScratchDocument != "scratch" {
		t.Errorf("got scratch document %q, want scratch", s.ScratchDocument)
	}
	if s.Typography.ScaleBase != 14.0 || s.Typography.ScaleRatio != 1.25 {
		t.Errorf("got typography defaults %+v", s.Typography)
	}
	if s.AccentColor != "#2e8b57" {
		t.Errorf("got accent color %q", s.AccentColor)
	}
}

func TestReadConfigOverrides(t *testing.T) {
	s, err := ReadConfig(`{
		"port": "9100",
		"dataRoot": "/tmp/notes",
		"typography": {"scaleBase": 16, "scaleRatio": 1.5},
		"accentColor": "#ff0000"
	}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Port != "9100" {
		t.Errorf("got port %q, want 9100", s.Port)
	}
	if s.DataRoot != "/tmp/notes" {
		t.Errorf("got data root %q", s.DataRoot)
	}
	if s.Typography.ScaleBase != 16 || s.Typography.ScaleRatio != 1.5 {
		t.Errorf("got typography %+v", s.Typography)
	}

	defaults := s.DocumentDefaults()
	if defaults.ScaleBase != 16 || defaults.ScaleRatio != 1.5 || defaults.AccentColor != "#ff0000" {
		t.Errorf("document defaults not bridged: %+v", defaults)
	}
}
