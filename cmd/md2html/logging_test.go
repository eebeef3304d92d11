package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNewLogger_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		flags commonFlags
		want  slog.Level
	}{
		{"default", commonFlags{}, slog.LevelWarn},
		{"verbose", commonFlags{verbose: true}, slog.LevelDebug},
		{"quiet", commonFlags{quiet: true}, slog.LevelError},
		{"quiet wins", commonFlags{quiet: true, verbose: true}, slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			logger := newLogger(&bytes.Buffer{}, tt.flags, false)
			ctx := context.Background()
			if !logger.Enabled(ctx, tt.want) {
				t.Errorf("level %v disabled", tt.want)
			}
			if logger.Enabled(ctx, tt.want-1) {
				t.Errorf("level below %v enabled", tt.want)
			}
		})
	}
}

func TestNewLogger_Format(t *testing.T) {
	t.Parallel()

	var jsonOut bytes.Buffer
	newLogger(&jsonOut, commonFlags{}, false).Warn("malformed block", "unit", 3)

	var record map[string]any
	if err := json.Unmarshal(jsonOut.Bytes(), &record); err != nil {
		t.Fatalf("non-terminal output is not JSON: %v\n%s", err, jsonOut.String())
	}
	if record["msg"] != "malformed block" || record["unit"] != float64(3) {
		t.Errorf("record = %v", record)
	}

	var textOut bytes.Buffer
	newLogger(&textOut, commonFlags{}, true).Warn("malformed block", "unit", 3)
	if !strings.Contains(textOut.String(), `msg="malformed block" unit=3`) {
		t.Errorf("terminal output = %q", textOut.String())
	}
}
