//go:build !windows

package stderr

import (
	"bytes"
	"log/slog"
	"os"
	"strings"
	"sync"
	"testing"
	"time"
)

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

func TestStart_CapturesAndLogs(t *testing.T) {
	var logs syncBuffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	if err := Start(logger); err != nil {
		t.Skipf("stderr capture unavailable: %v", err)
	}
	defer Stop()

	if _, err := os.Stderr.WriteString("decoder warning\n\n"); err != nil {
		t.Fatalf("write stderr: %v", err)
	}

	select {
	case line := <-Messages:
		if line != "decoder warning" {
			t.Errorf("captured %q, want %q", line, "decoder warning")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for captured line")
	}

	Stop()
	if !strings.Contains(logs.String(), "decoder warning") {
		t.Errorf("log = %q, want captured line", logs.String())
	}
}

func TestStart_Twice(t *testing.T) {
	if err := Start(nil); err != nil {
		t.Skipf("stderr capture unavailable: %v", err)
	}
	defer Stop()

	if err := Start(nil); err != nil {
		t.Errorf("second Start() error: %v", err)
	}
}

func TestStop_WithoutStart(_ *testing.T) {
	Stop()
	WriteOriginal("")
}
