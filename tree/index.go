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
	"github.com/google/btree"
)

const indexDegree = 8

// Entry describes one location of an indexed map. Path is the sequence of
// sides from the root, "L" for left and "R" for right; the root has an
// empty path.
type Entry struct {
	Name     string
	Path     string
	Depth    int
	Terminal bool
}

// Less orders entries by name and then by path, so two locations sharing
// a name are both kept.
func (e Entry) Less(than btree.Item) bool {
	o := than.(Entry)
	if e.Name != o.Name {
		return e.Name < o.Name
	}
	return e.Path < o.Path
}

// Index keeps the locations of a map in alphabetical order.
type Index struct {
	bt *btree.BTree
}

// NewIndex indexes every location reachable from root.
func NewIndex(root *Location) (*Index, error) {
	if root == nil {
		return nil, ErrNilRoot
	}

	idx := &Index{bt: btree.New(indexDegree)}

	type frame struct {
		loc  *Location
		path string
	}
	stack := []frame{{root, ""}}
	seen := make(map[*Location]struct{})
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := seen[f.loc]; ok {
			return nil, ErrCycle
		}
		seen[f.loc] = struct{}{}

		idx.bt.ReplaceOrInsert(Entry{
			Name:     f.loc.name,
			Path:     f.path,
			Depth:    len(f.path),
			Terminal: f.loc.IsTerminal(),
		})
		if f.loc.right != nil {
			stack = append(stack, frame{f.loc.right, f.path + "R"})
		}
		if f.loc.left != nil {
			stack = append(stack, frame{f.loc.left, f.path + "L"})
		}
	}
	return idx, nil
}

// Len returns the number of indexed locations.
func (i *Index) Len() int {
	return i.bt.Len()
}

// Ascend calls fn for every entry in alphabetical order until fn
// returns false.
func (i *Index) Ascend(fn func(Entry) bool) {
	i.bt.Ascend(func(item btree.Item) bool {
		return fn(item.(Entry))
	})
}

// Lookup returns every location with exactly the given name, ordered
// by path.
func (i *Index) Lookup(name string) []Entry {
	var found []Entry
	i.bt.AscendGreaterOrEqual(Entry{Name: name}, func(item btree.Item) bool {
		e := item.(Entry)
		if e.Name != name {
			return false
		}
		found = append(found, e)
		return true
	})
	return found
}

// Names returns the distinct location names in alphabetical order.
func (i *Index) Names() []string {
	var names []string
	i.bt.Ascend(func(item btree.Item) bool {
		e := item.(Entry)
		if n := len(names); n == 0 || names[n-1] != e.Name {
			names = append(names, e.Name)
		}
		return true
	})
	return names
}
