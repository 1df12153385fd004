// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package main is the entry point for the vizkit CLI tool.
package main

import (
	"github.com/vizkit/vizkit/internal/cmd"
)

func main() {
	cmd.Execute()
}
