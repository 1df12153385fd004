// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hierarchy

import (
	"errors"
	"testing"

	"github.com/vizkit/vizkit"
)

func TestBuildSingleRoot(t *testing.T) {
	root, err := Build(
		[]string{"a", "a", "b"},
		[]string{"b", "c", "d"},
		[]float64{1, 2, 3},
	)
	if err != nil {
		t.Fatal(err)
	}
	if root.Name != "a" || len(root.Children) != 2 {
		t.Fatalf("root = %s with %d children, want a with 2", root.Name, len(root.Children))
	}
	if got := root.Sum(); got != 6 {
		t.Errorf("Sum = %v, want 6", got)
	}
	if root.Children[0].Name != "b" || root.Children[0].Children[0].Name != "d" {
		t.Error("children not linked in edge order")
	}
}

func TestBuildMultipleRoots(t *testing.T) {
	root, err := Build(
		[]string{"a", "x"},
		[]string{"b", "y"},
		nil,
	)
	if err != nil {
		t.Fatal(err)
	}
	if root.Name != "root" || len(root.Children) != 2 {
		t.Fatalf("want synthetic root over 2 subtrees, got %s with %d", root.Name, len(root.Children))
	}
}

func TestBuildRejectsCycle(t *testing.T) {
	var cerr *vizkit.ConfigurationError
	if _, err := Build([]string{"a", "b"}, []string{"b", "a"}, nil); !errors.As(err, &cerr) {
		t.Errorf("pure cycle: err = %v, want *ConfigurationError", err)
	}
	if _, err := Build([]string{"a", "c", "d"}, []string{"b", "d", "c"}, nil); !errors.As(err, &cerr) {
		t.Errorf("side cycle: err = %v, want *ConfigurationError", err)
	}
}

func TestBuildRejectsTwoParents(t *testing.T) {
	var cerr *vizkit.ConfigurationError
	if _, err := Build([]string{"a", "b"}, []string{"c", "c"}, nil); !errors.As(err, &cerr) {
		t.Errorf("err = %v, want *ConfigurationError", err)
	}
}

func TestBuildEmpty(t *testing.T) {
	if _, err := Build(nil, nil, nil); !errors.Is(err, vizkit.ErrEmptyInput) {
		t.Errorf("err = %v, want ErrEmptyInput", err)
	}
}
