// Package trace writes per-frame motion samples to CSV for inspecting how
// easing presets shape velocity over time.
package trace

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
)

// Sample is one mover at the end of one frame.
type Sample struct {
	Frame  int     `csv:"frame"`
	Mover  string  `csv:"mover"`
	X      float64 `csv:"x"`
	Y      float64 `csv:"y"`
	VX     float64 `csv:"vx"`
	VY     float64 `csv:"vy"`
	Active bool    `csv:"active"`
}

// Recorder buffers samples for the current frame and appends them to the
// output on Flush. The CSV header is written with the first batch.
type Recorder struct {
	out           io.Writer
	closer        io.Closer
	frame         int
	pending       []*Sample
	headerWritten bool
}

func NewRecorder(out io.Writer) *Recorder {
	r := &Recorder{out: out}
	if c, ok := out.(io.Closer); ok {
		r.closer = c
	}
	return r
}

// Create opens a timestamped trace file in dir. Returns nil if dir is empty.
func Create(dir string) (*Recorder, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating trace directory: %w", err)
	}
	name := fmt.Sprintf("trace-%s.csv", time.Now().Format("20060102-150405"))
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", name, err)
	}
	return NewRecorder(f), nil
}

// Add stamps s with the current frame and queues it.
func (r *Recorder) Add(s Sample) {
	if r == nil {
		return
	}
	s.Frame = r.frame
	r.pending = append(r.pending, &s)
}

// Flush writes the queued samples and moves on to the next frame.
func (r *Recorder) Flush() error {
	if r == nil {
		return nil
	}
	r.frame++
	if len(r.pending) == 0 {
		return nil
	}

	var err error
	if !r.headerWritten {
		err = gocsv.Marshal(r.pending, r.out)
		r.headerWritten = true
	} else {
		err = gocsv.MarshalWithoutHeaders(r.pending, r.out)
	}
	r.pending = r.pending[:0]
	if err != nil {
		return fmt.Errorf("writing trace: %w", err)
	}
	return nil
}

// Frame returns the number of the frame being collected.
func (r *Recorder) Frame() int {
	if r == nil {
		return 0
	}
	return r.frame
}

func (r *Recorder) Close() error {
	if r == nil {
		return nil
	}
	err := r.Flush()
	if r.closer != nil {
		err = errors.Join(err, r.closer.Close())
	}
	return err
}
