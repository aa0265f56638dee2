/*
   Copyright 2018-2019 Banco Bilbao Vizcaya Argentaria, S.A.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package tree implements the mansion map: a strict binary tree of named
// locations that is built once, read during navigation and released in a
// single teardown pass.
package tree

import (
	"fmt"
)

// Side selects one of the two children of a Location.
type Side uint8

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("side(%d)", uint8(s))
	}
}

// Location is a named node of the map.
type Location struct {
	name        string
	left, right *Location

	attached bool // has a parent
	released bool
}

// New creates a location with the given name and no children.
// There is no soft failure path: if memory cannot be obtained the Go
// runtime aborts the whole process.
func New(name string) *Location {
	return &Location{name: name}
}

// Name returns the display name of the location.
func (l *Location) Name() string {
	return l.name
}

// Left returns the left child, or nil.
func (l *Location) Left() *Location {
	return l.left
}

// Right returns the right child, or nil.
func (l *Location) Right() *Location {
	return l.right
}

// Child returns the child on the given side, or nil.
func (l *Location) Child(side Side) *Location {
	if side == Left {
		return l.left
	}
	return l.right
}

// IsTerminal reports whether the location is a dead end.
func (l *Location) IsTerminal() bool {
	return l.left == nil && l.right == nil
}

func (l *Location) String() string {
	return fmt.Sprintf("Location(%s)", l.name)
}

// Attach sets the child on the given side and returns the child, so fixed
// maps can be written as chains. It is meant for map construction only:
// overwriting a child, reusing a node that already has a parent or closing
// a cycle are programming errors and panic.
func (l *Location) Attach(side Side, child *Location) *Location {
	if l == nil || child == nil {
		panic("tree: attach with a nil location")
	}
	if l.released || child.released {
		panic(fmt.Sprintf("tree: attach on released location %q", l.name))
	}
	if side != Left && side != Right {
		panic(fmt.Sprintf("tree: unknown side %v", side))
	}
	if l.Child(side) != nil {
		panic(fmt.Sprintf("tree: %s child of %q is already set", side, l.name))
	}
	if child.attached {
		panic(fmt.Sprintf("tree: %q already has a parent", child.name))
	}
	if child.contains(l) {
		panic(fmt.Sprintf("tree: attaching %q under %q would create a cycle", child.name, l.name))
	}

	if side == Left {
		l.left = child
	} else {
		l.right = child
	}
	child.attached = true
	return child
}

// contains reports whether target is reachable from l, l included.
func (l *Location) contains(target *Location) bool {
	found := false
	_ = Walk(l, func(loc *Location, _ int) error {
		if loc == target {
			found = true
			return errStop
		}
		return nil
	})
	return found
}

// Destroy releases every location reachable from root, children before
// parents, and returns how many were released. It is safe on a nil root
// and on an already destroyed tree, both of which release nothing.
// No navigator may hold a cursor into the tree when it is called.
func Destroy(root *Location) int {
	if root == nil || root.released {
		return 0
	}

	type frame struct {
		loc      *Location
		expanded bool
	}

	released := 0
	stack := []frame{{loc: root}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if !top.expanded {
			top.expanded = true
			loc := top.loc
			if loc.right != nil && !loc.right.released {
				stack = append(stack, frame{loc: loc.right})
			}
			if loc.left != nil && !loc.left.released {
				stack = append(stack, frame{loc: loc.left})
			}
			continue
		}

		loc := top.loc
		stack = stack[:len(stack)-1]
		loc.left, loc.right = nil, nil
		loc.attached = false
		loc.released = true
		released++
	}
	return released
}
