// File: level_test.go
// Title: Log Level Tests
// Description: Tests for level parsing, string conversion, and minimum
//              level filtering.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation

package log

import "testing"

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
		short string
	}{
		{LevelTrace, "trace", "TRC"},
		{LevelDebug, "debug", "DBG"},
		{LevelInfo, "info", "INF"},
		{LevelWarn, "warn", "WRN"},
		{LevelError, "error", "ERR"},
		{LevelFatal, "fatal", "FTL"},
		{Level(99), "unknown", "???"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			if got := tt.level.ShortString(); got != tt.short {
				t.Errorf("ShortString() = %q, want %q", got, tt.short)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Level
		wantErr bool
	}{
		{"plain info", "info", LevelInfo, false},
		{"short form", "dbg", LevelDebug, false},
		{"upper case", "WARN", LevelWarn, false},
		{"padded", "  error  ", LevelError, false},
		{"warning alias", "warning", LevelWarn, false},
		{"unknown", "loud", LevelInfo, true},
		{"empty", "", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestShouldLog(t *testing.T) {
	if LevelDebug.ShouldLog(LevelInfo) {
		t.Error("debug must be filtered at info minimum")
	}
	if !LevelError.ShouldLog(LevelInfo) {
		t.Error("error must pass at info minimum")
	}
	if !LevelInfo.ShouldLog(LevelInfo) {
		t.Error("level equal to minimum must pass")
	}
}

func TestAllLevels(t *testing.T) {
	levels := AllLevels()
	if len(levels) != 6 {
		t.Fatalf("AllLevels() returned %d levels, want 6", len(levels))
	}
	if levels[0] != LevelTrace || levels[len(levels)-1] != LevelFatal {
		t.Error("AllLevels() must run from trace to fatal")
	}
}
