package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Warn, Output: &buf})

	l.Info("hidden", nil)
	l.Warn("shown", map[string]any{"k": "v"})

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be filtered: %q", out)
	}
	if !strings.Contains(out, "msg=shown") || !strings.Contains(out, "k=v") {
		t.Fatalf("expected warn line with fields, got %q", out)
	}
}

func TestLogger_JSONWithBaseFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Debug, Format: FormatJSON, App: "shelter", Output: &buf})
	l.(*StdLogger).now = func() time.Time { return time.Date(2025, 7, 29, 0, 0, 0, 0, time.UTC) }

	l.With(map[string]any{"component": "store"}).Error("boom", map[string]any{"id": "a1"})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid json line %q: %v", buf.String(), err)
	}
	want := map[string]string{
		"app":       "shelter",
		"component": "store",
		"id":        "a1",
		"level":     "error",
		"msg":       "boom",
		"ts":        "2025-07-29T00:00:00Z",
	}
	for k, v := range want {
		if entry[k] != v {
			t.Fatalf("%s: got %v want %v", k, entry[k], v)
		}
	}
}

func TestParseLevelAndFormat(t *testing.T) {
	cases := map[string]Level{"": Info, "DEBUG": Debug, "warning": Warn, "error": Error, "nope": Info}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
	if ParseFormat(" JSON ") != FormatJSON || ParseFormat("xml") != FormatText {
		t.Fatalf("unexpected ParseFormat result")
	}
}
