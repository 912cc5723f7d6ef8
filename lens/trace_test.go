package lens_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/authcorp/optics/lens"
)

func TestTraced(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	l := lens.Traced(lens.Index[int](1), logger, "second")

	if _, err := lens.View([]int{1, 2}, l); err != nil {
		t.Fatal(err)
	}
	if _, err := lens.Set([]int{1}, l, 5); err == nil {
		t.Fatal("expected set to fail")
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d: %s", len(lines), buf.String())
	}

	var first, second map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatal(err)
	}

	if first["level"] != "DEBUG" || first["lens"] != "second" || first["op"] != "view" {
		t.Errorf("unexpected view entry %v", first)
	}
	if second["level"] != "WARN" || second["op"] != "set" || second["code"] != "OUT_OF_RANGE" {
		t.Errorf("unexpected set entry %v", second)
	}
}

func TestTracedDefaultLogger(t *testing.T) {
	l := lens.Traced(lens.Identity[int](), nil, "id")
	if v, err := lens.View(3, l); err != nil || v != 3 {
		t.Errorf("expected 3, got %v (%v)", v, err)
	}
}
