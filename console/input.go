// SPDX-License-Identifier: MIT
// Package console provides the scoped line reader shared by the command-line
// programs. An Input is opened once per run and closed with defer, so the
// underlying stream is released on every exit path.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoInput is returned by Line when the stream ends before a line is available.
var ErrNoInput = errors.New("no input")

// ErrClosed is returned by Line after Close.
var ErrClosed = errors.New("console: input closed")

// Input reads newline-terminated lines from a stream.
type Input struct {
	src    io.Reader
	rd     *bufio.Reader
	closed bool
}

// Open wraps r in an Input. The caller owns the returned value and must Close it.
func Open(r io.Reader) *Input {
	return &Input{src: r, rd: bufio.NewReader(r)}
}

// Line returns the next line without its terminator; a trailing "\r" is dropped.
// Lines have no length limit, and a final line without a newline is still returned.
func (in *Input) Line() (string, error) {
	if in.closed {
		return "", ErrClosed
	}
	line, err := in.rd.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("console: read: %w", err)
		}
		if line == "" {
			return "", ErrNoInput
		}
	}
	line = strings.TrimSuffix(line, "\n")

	return strings.TrimSuffix(line, "\r"), nil
}

// Close releases the underlying stream when it is an io.Closer.
// Calling Close more than once is a no-op.
func (in *Input) Close() error {
	if in.closed {
		return nil
	}
	in.closed = true
	if c, ok := in.src.(io.Closer); ok {
		return c.Close()
	}

	return nil
}
