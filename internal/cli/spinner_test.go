package cli

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"
)

// syncBuffer guards a buffer read by the test while the spinner writes.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpinnerDrawsMessage(t *testing.T) {
	var buf syncBuffer
	s := newSpinnerTo(context.Background(), &buf, "Working...")
	s.interval = 5 * time.Millisecond
	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.Stop()

	if !strings.Contains(buf.String(), "Working...") {
		t.Errorf("output = %q, want message", buf.String())
	}
}

func TestSpinnerStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var buf syncBuffer
	s := newSpinnerTo(ctx, &buf, "Waiting...")
	s.Start()

	cancel()

	select {
	case <-s.Done():
	case <-time.After(time.Second):
		t.Fatal("spinner did not stop after context cancellation")
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	var buf syncBuffer
	s := newSpinnerTo(context.Background(), &buf, "Twice")
	s.Start()
	s.Stop()
	s.Stop()

	select {
	case <-s.Done():
	default:
		t.Error("Done() not closed after Stop()")
	}
}
