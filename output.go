// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vizkit

import (
	"fmt"
	"os"
	"path/filepath"
)

// Output describes where a rendered chart document goes. The zero
// value writes to a chart-named file under the system temp directory
// and refuses to clobber an existing file.
type Output struct {
	// Path is the destination file. Empty means
	// <tempdir>/vizkit-<chart>.html.
	Path string

	// Overwrite allows replacing an existing file. The
	// replacement is logged as a warning.
	Overwrite bool

	Logger Logger
}

// Resolve returns the effective destination path for a chart name.
func (o Output) Resolve(chart string) string {
	if o.Path != "" {
		return o.Path
	}
	return filepath.Join(os.TempDir(), "vizkit-"+chart+".html")
}

// Write stores a complete rendered document, honoring the
// overwrite-or-refuse contract, and returns the path written.
func (o Output) Write(chart string, doc []byte) (string, error) {
	log := EnsureLogger(o.Logger)
	path := o.Resolve(chart)
	if _, err := os.Stat(path); err == nil {
		if !o.Overwrite {
			return "", fmt.Errorf("output file %s exists (set Overwrite to replace it)", path)
		}
		log.Printf("overwriting %s", path)
	}
	if err := os.WriteFile(path, doc, 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
