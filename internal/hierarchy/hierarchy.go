// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hierarchy turns parent-child edge lists into trees for the
// tree and treemap charts.
package hierarchy

import (
	"fmt"

	"github.com/vizkit/vizkit"
)

// Node is one tree node. Value is the weight carried by the node's
// incoming edge; Sum adds descendants.
type Node struct {
	Name     string
	Value    float64
	Children []*Node
}

// Sum returns the node's value plus all descendant values.
func (n *Node) Sum() float64 {
	total := n.Value
	for _, c := range n.Children {
		total += c.Sum()
	}
	return total
}

// Build links parent-child edges into a single tree. Roots are
// labels that never appear as a child; several roots are gathered
// under a synthetic root named root. A child with two parents, an
// edge cycle, or no root at all is a ConfigurationError.
func Build(parents, children []string, weights []float64) (*Node, error) {
	if len(parents) == 0 {
		return nil, vizkit.ErrEmptyInput
	}

	nodes := make(map[string]*Node)
	get := func(name string) *Node {
		n, ok := nodes[name]
		if !ok {
			n = &Node{Name: name}
			nodes[name] = n
		}
		return n
	}

	hasParent := make(map[string]bool)
	for i := range parents {
		p, c := get(parents[i]), get(children[i])
		if hasParent[children[i]] {
			return nil, &vizkit.ConfigurationError{
				Option: "hierarchy",
				Value:  children[i],
				Detail: "node has more than one parent",
			}
		}
		hasParent[children[i]] = true
		if weights != nil {
			c.Value = weights[i]
		}
		p.Children = append(p.Children, c)
	}

	var roots []*Node
	for _, name := range order(parents, children) {
		if !hasParent[name] {
			roots = append(roots, nodes[name])
		}
	}
	if len(roots) == 0 {
		return nil, &vizkit.ConfigurationError{
			Option: "hierarchy",
			Value:  "edges",
			Detail: "no root: the edge list is cyclic",
		}
	}

	root := roots[0]
	if len(roots) > 1 {
		root = &Node{Name: "root", Children: roots}
	}

	// A reachability check catches cycles hanging off the tree.
	seen := 0
	var walk func(*Node)
	walk = func(n *Node) {
		seen++
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)
	want := len(nodes)
	if len(roots) > 1 {
		want++
	}
	if seen != want {
		return nil, &vizkit.ConfigurationError{
			Option: "hierarchy",
			Value:  fmt.Sprintf("%d of %d nodes reachable", seen, want),
			Detail: "the edge list contains a cycle",
		}
	}
	return root, nil
}

// order returns every label in first-seen order, parents before
// children within a row.
func order(parents, children []string) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	for i := range parents {
		add(parents[i])
		add(children[i])
	}
	return out
}
