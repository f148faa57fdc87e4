package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/raphi011/vault/internal/log"
)

// RunContext executes a command in dir and returns stderr in the error
// message if it fails. A context that is already done when the command would
// start is reported as the context error; a command that has started always
// runs to completion.
func RunContext(ctx context.Context, dir, name string, args ...string) error {
	_, err := run(ctx, dir, nil, nil, name, args...)
	return err
}

// OutputContext executes a command in dir and returns stdout, with stderr
// in the error if it fails.
func OutputContext(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	var stdout bytes.Buffer
	if _, err := run(ctx, dir, &stdout, nil, name, args...); err != nil {
		return nil, err
	}
	return stdout.Bytes(), nil
}

// StreamContext executes a command in dir, passing its stdout and stderr
// through to w while it runs. The captured stderr text is returned either
// way so callers can attach it to a result.
func StreamContext(ctx context.Context, dir string, w io.Writer, name string, args ...string) (string, error) {
	if w == nil {
		w = io.Discard
	}
	sw := &syncWriter{w: w}
	return run(ctx, dir, sw, sw, name, args...)
}

// syncWriter serializes writes from the stdout and stderr copy goroutines.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

// run executes the command. When tee is set, stderr is written to it as well
// as being captured.
//
// Cancellation is only checked before the command starts. The child is not
// bound to ctx: once started it runs to completion, and callers check ctx
// between operations.
func run(ctx context.Context, dir string, stdout, tee io.Writer, name string, args ...string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	done := log.FromContext(ctx).Command(dir, name, args...)
	start := time.Now()

	var stderr bytes.Buffer
	c := exec.Command(name, args...)
	c.Dir = dir
	c.Stdout = stdout
	c.Stderr = &stderr
	if tee != nil {
		c.Stderr = io.MultiWriter(tee, &stderr)
	}

	err := c.Run()
	done(time.Since(start))

	diag := strings.TrimSpace(stderr.String())
	if err != nil {
		if diag != "" {
			return diag, errors.New(diag)
		}
		return diag, err
	}
	return diag, nil
}
