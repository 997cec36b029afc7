// Package iotest provides io helpers for tests.
package iotest

import (
	"bytes"
	"io"
	"testing"
)

var _newline = []byte("\n")

// Writer builds an io.Writer that logs everything written to it
// to the given testing.TB.
func Writer(t testing.TB) io.Writer {
	return &testWriter{t}
}

type testWriter struct{ t testing.TB }

func (w *testWriter) Write(b []byte) (int, error) {
	w.t.Logf("%s", bytes.TrimSuffix(b, _newline))
	return len(b), nil
}
