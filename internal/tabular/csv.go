// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tabular

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/aclements/go-gg/table"

	"github.com/vizkit/vizkit"
)

// FromCSV reads a CSV stream whose first record names the columns
// and returns a table with one []string column per name. Conversion
// to typed columns is left to the chart that knows which columns it
// needs.
func FromCSV(r io.Reader) (*table.Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, vizkit.ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	cols := make([][]string, len(header))
	n := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV row %d: %w", n, err)
		}
		for i := range header {
			cols[i] = append(cols[i], rec[i])
		}
		n++
	}
	if n == 0 {
		return nil, vizkit.ErrEmptyInput
	}

	b := new(table.Builder)
	for i, name := range header {
		b.Add(name, cols[i])
	}
	return b.Done(), nil
}
