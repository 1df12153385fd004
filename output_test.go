// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vizkit

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Printf(format string, args ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func TestOutputDefaultPath(t *testing.T) {
	got := Output{}.Resolve("chord")
	want := filepath.Join(os.TempDir(), "vizkit-chord.html")
	if got != want {
		t.Errorf("Resolve = %q, want %q", got, want)
	}
}

func TestOutputRefusesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.html")
	if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := (Output{Path: path}).Write("x", []byte("new")); err == nil {
		t.Fatal("Write over an existing file without Overwrite should fail")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "old" {
		t.Error("refused write still modified the file")
	}
}

func TestOutputOverwriteWarns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.html")
	if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	log := new(recordingLogger)
	wrote, err := (Output{Path: path, Overwrite: true, Logger: log}).Write("x", []byte("new"))
	if err != nil {
		t.Fatal(err)
	}
	if wrote != path {
		t.Errorf("wrote %q, want %q", wrote, path)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "new" {
		t.Error("overwrite did not replace contents")
	}
	if len(log.lines) != 1 || !strings.Contains(log.lines[0], "overwriting") {
		t.Errorf("expected one overwrite warning, got %v", log.lines)
	}
}

func TestOutputFreshWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fresh.html")
	log := new(recordingLogger)
	if _, err := (Output{Path: path, Logger: log}).Write("x", []byte("doc")); err != nil {
		t.Fatal(err)
	}
	if len(log.lines) != 0 {
		t.Errorf("fresh write should not warn, got %v", log.lines)
	}
}
