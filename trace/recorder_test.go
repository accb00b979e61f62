package trace

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gocarina/gocsv"
)

func TestRecorder_HeaderOnce(t *testing.T) {
	var buf bytes.Buffer
	r := NewRecorder(&buf)

	r.Add(Sample{Mover: "a", X: 1, VX: 60, Active: true})
	r.Add(Sample{Mover: "b", Y: 2})
	if err := r.Flush(); err != nil {
		t.Fatal(err)
	}
	r.Add(Sample{Mover: "a", X: 2})
	if err := r.Flush(); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d lines:\n%s", len(lines), buf.String())
	}
	if lines[0] != "frame,mover,x,y,vx,vy,active" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if strings.Count(buf.String(), "frame,") != 1 {
		t.Errorf("expected a single header, got:\n%s", buf.String())
	}
}

func TestRecorder_FramesAdvance(t *testing.T) {
	var buf bytes.Buffer
	r := NewRecorder(&buf)

	r.Add(Sample{Mover: "a", X: 10, VX: -30})
	_ = r.Flush()
	_ = r.Flush() // empty frame writes nothing
	r.Add(Sample{Mover: "a", X: 5})
	_ = r.Flush()

	var samples []*Sample
	if err := gocsv.UnmarshalString(buf.String(), &samples); err != nil {
		t.Fatalf("reading trace back: %v", err)
	}
	if len(samples) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(samples))
	}
	if samples[0].Frame != 0 || samples[1].Frame != 2 {
		t.Errorf("expected frames 0 and 2, got %d and %d", samples[0].Frame, samples[1].Frame)
	}
	if samples[0].X != 10 || samples[0].VX != -30 {
		t.Errorf("unexpected first sample %+v", samples[0])
	}
	if r.Frame() != 3 {
		t.Errorf("expected frame 3, got %d", r.Frame())
	}
}

func TestCreate(t *testing.T) {
	r, err := Create("")
	if err != nil || r != nil {
		t.Fatalf("expected nil recorder for empty dir, got %v, %v", r, err)
	}

	dir := filepath.Join(t.TempDir(), "traces")
	r, err = Create(dir)
	if err != nil {
		t.Fatal(err)
	}
	r.Add(Sample{Mover: "a"})
	if err := r.Close(); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || !strings.HasSuffix(entries[0].Name(), ".csv") {
		t.Fatalf("expected one csv file, got %v", entries)
	}
	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "frame,mover") {
		t.Errorf("expected header in file, got %q", data)
	}
}

func TestNilRecorder(t *testing.T) {
	var r *Recorder
	r.Add(Sample{})
	if err := r.Flush(); err != nil {
		t.Error(err)
	}
	if err := r.Close(); err != nil {
		t.Error(err)
	}
}
