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

package tree

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrNilRoot is returned when a map has no root location.
	ErrNilRoot = errors.New("tree: nil root location")

	// ErrCycle is returned when a location is reachable more than once.
	ErrCycle = errors.New("tree: location reached twice")

	errStop = errors.New("stop")
)

// WalkFunc is called for every location in pre-order with its depth
// (the root has depth 0). Returning an error stops the walk.
type WalkFunc func(loc *Location, depth int) error

// Walk visits every location reachable from root in pre-order, left
// before right. It keeps a visited set and fails with ErrCycle instead of
// visiting a location twice. A nil root is a no-op.
func Walk(root *Location, fn WalkFunc) error {
	if root == nil {
		return nil
	}

	type frame struct {
		loc   *Location
		depth int
	}

	visited := make(map[*Location]struct{})
	stack := []frame{{root, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, ok := visited[f.loc]; ok {
			return errors.Wrapf(ErrCycle, "at %q", f.loc.name)
		}
		visited[f.loc] = struct{}{}

		if err := fn(f.loc, f.depth); err != nil {
			if err == errStop {
				return nil
			}
			return err
		}

		if f.loc.right != nil {
			stack = append(stack, frame{f.loc.right, f.depth + 1})
		}
		if f.loc.left != nil {
			stack = append(stack, frame{f.loc.left, f.depth + 1})
		}
	}
	return nil
}

// Validate checks that root exists and that every location below it has
// exactly one parent.
func Validate(root *Location) error {
	if root == nil {
		return ErrNilRoot
	}
	return Walk(root, func(*Location, int) error { return nil })
}

// Stats summarizes the shape of a map.
type Stats struct {
	Locations int
	DeadEnds  int
	Depth     int
}

// Measure walks the map and returns its Stats.
func Measure(root *Location) (Stats, error) {
	var s Stats
	err := Walk(root, func(loc *Location, depth int) error {
		s.Locations++
		if loc.IsTerminal() {
			s.DeadEnds++
		}
		if depth > s.Depth {
			s.Depth = depth
		}
		return nil
	})
	return s, err
}

// Fprint writes an indented rendering of the map, one location per line.
// Dead ends are marked with a trailing "*".
func Fprint(w io.Writer, root *Location) error {
	return Walk(root, func(loc *Location, depth int) error {
		marker := ""
		if loc.IsTerminal() {
			marker = " *"
		}
		_, err := fmt.Fprintf(w, "%s%s%s\n", strings.Repeat("  ", depth), loc.name, marker)
		return err
	})
}
