// Package input reads validated amounts from an interactive line stream.
package input

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"budget/internal/core"
	applog "budget/internal/log"
)

// ErrEndOfInput is returned when the stream ends before a value is entered.
var ErrEndOfInput = fmt.Errorf("end of input: %w", io.EOF)

const (
	msgNumbersOnly = "   ❌ Numbers only!\n\n"
	msgNonNegative = "   ⚠ Enter a non-negative value.\n\n"
)

// Collector prompts on w and reads answers from r, one line per prompt.
type Collector struct {
	r      *bufio.Reader
	w      io.Writer
	echo   bool
	logger *applog.Logger

	start sync.Once
	lines chan lineResult
}

type lineResult struct {
	line string
	err  error
}

// Option configures a Collector.
type Option func(*Collector)

// WithEcho mirrors every consumed line after its prompt. Useful when stdin is
// piped and the terminal does not show what was typed.
func WithEcho(echo bool) Option {
	return func(c *Collector) { c.echo = echo }
}

// WithLogger sets the diagnostics logger.
func WithLogger(l *applog.Logger) Option {
	return func(c *Collector) { c.logger = l }
}

func NewCollector(r io.Reader, w io.Writer, opts ...Option) *Collector {
	c := &Collector{
		r:      bufio.NewReader(r),
		w:      w,
		logger: applog.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.WithComponent(applog.ComponentInput)
	return c
}

// ReadAmount prompts until a non-negative integer is entered and returns it.
// A blank line counts as zero. Malformed and negative entries print a warning
// and prompt again. Cancelling ctx aborts a pending read immediately.
func (c *Collector) ReadAmount(ctx context.Context, prompt string) (core.Money, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		line, err := c.readLine(ctx, prompt)
		if err != nil {
			return 0, err
		}

		if strings.TrimSpace(line) == "" {
			return 0, nil
		}

		amount, err := core.ParseAmount(line)
		switch {
		case err == nil:
			return amount, nil
		case errors.Is(err, core.ErrNegativeAmount):
			c.warn(ctx, prompt, err, msgNonNegative)
		default:
			c.warn(ctx, prompt, err, msgNumbersOnly)
		}
	}
}

func (c *Collector) readLine(ctx context.Context, prompt string) (string, error) {
	if _, err := io.WriteString(c.w, prompt); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}

	c.start.Do(func() {
		c.lines = make(chan lineResult, 1)
		go c.readLoop()
	})

	var res lineResult
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r, ok := <-c.lines:
		if !ok {
			return "", ErrEndOfInput
		}
		res = r
	}

	line, err := res.line, res.err
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		if line == "" {
			return "", ErrEndOfInput
		}
		// last line without a trailing newline
	}
	line = strings.TrimRight(line, "\r\n")

	if c.echo {
		fmt.Fprintln(c.w, line)
	}
	return line, nil
}

// readLoop feeds lines to readLine until the stream fails or ends. A line
// read while nobody waits stays queued for the next prompt.
func (c *Collector) readLoop() {
	defer close(c.lines)
	for {
		line, err := c.r.ReadString('\n')
		c.lines <- lineResult{line: line, err: err}
		if err != nil {
			return
		}
	}
}

func (c *Collector) warn(ctx context.Context, prompt string, reason error, msg string) {
	c.logger.DebugContext(ctx, "Rejected input",
		applog.FieldOperation, applog.OpParse,
		applog.FieldPrompt, strings.TrimSpace(prompt),
		applog.FieldReason, reason.Error())
	_, _ = io.WriteString(c.w, msg)
}
