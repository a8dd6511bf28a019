//go:build !windows

// Package stderr captures output written directly to file descriptor 2,
// such as Go runtime warnings or child processes inheriting it, while the
// TUI owns the terminal. Captured lines go to the log and to Messages.
package stderr

import (
	"bufio"
	"log/slog"
	"os"
	"strings"
	"sync"

	"golang.org/x/sys/unix"
)

// Messages receives captured stderr lines for display in the status line.
var Messages = make(chan string, 100)

var (
	mu         sync.Mutex
	origStderr = -1
	pipeRead   *os.File
	pipeWrite  *os.File
	started    bool
	done       chan struct{}
)

// Start begins capturing stderr output, logging every line to logger.
// The program can continue without capture if it returns an error.
func Start(logger *slog.Logger) error {
	mu.Lock()
	defer mu.Unlock()

	if started {
		return nil
	}
	if logger == nil {
		logger = slog.Default()
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}

	fd := int(os.Stderr.Fd())
	orig, err := unix.Dup(fd)
	if err != nil {
		r.Close()
		w.Close()
		return err
	}

	// Redirect fd 2 to the pipe's write end
	if err := unix.Dup2(int(w.Fd()), fd); err != nil {
		_ = unix.Close(orig)
		r.Close()
		w.Close()
		return err
	}

	origStderr = orig
	pipeRead = r
	pipeWrite = w
	started = true
	done = make(chan struct{})

	go forward(r, logger.With("component", "stderr"), done)

	return nil
}

func forward(r *os.File, logger *slog.Logger, done chan struct{}) {
	defer close(done)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		logger.Warn("captured stderr", "line", line)
		select {
		case Messages <- line:
		default:
			// Channel full, drop message to avoid blocking
		}
	}
}

// WriteOriginal writes directly to the original stderr, bypassing capture.
func WriteOriginal(msg string) {
	mu.Lock()
	fd := origStderr
	mu.Unlock()

	if fd < 0 {
		_, _ = os.Stderr.WriteString(msg)
		return
	}
	_, _ = unix.Write(fd, []byte(msg))
}

// Stop restores the original stderr.
func Stop() {
	mu.Lock()
	defer mu.Unlock()

	if !started {
		return
	}

	_ = unix.Dup2(origStderr, int(os.Stderr.Fd()))
	_ = unix.Close(origStderr)
	origStderr = -1

	pipeWrite.Close()
	<-done
	pipeRead.Close()

	started = false
}
