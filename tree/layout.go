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
	"strings"

	"github.com/pkg/errors"
)

// ErrEmptyLayout is returned when building a map from no layout at all.
var ErrEmptyLayout = errors.New("tree: empty layout")

// Layout is the configuration form of a map. It is what map files and
// session journals carry.
type Layout struct {
	Name  string  `mapstructure:"name" codec:"name"`
	Left  *Layout `mapstructure:"left" codec:"left,omitempty"`
	Right *Layout `mapstructure:"right" codec:"right,omitempty"`
}

// Build creates the locations described by the layout and attaches them.
// Every location must have a non blank name; the error names the path of
// the offending entry, e.g. "root.left.right".
func (l *Layout) Build() (*Location, error) {
	if l == nil {
		return nil, ErrEmptyLayout
	}

	type pending struct {
		layout *Layout
		parent *Location
		side   Side
		path   string
	}

	var root *Location
	queue := []pending{{layout: l, path: "root"}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		name := strings.TrimSpace(p.layout.Name)
		if name == "" {
			return nil, errors.Errorf("tree: location at %s has no name", p.path)
		}

		loc := New(name)
		if p.parent == nil {
			root = loc
		} else {
			p.parent.Attach(p.side, loc)
		}

		if p.layout.Left != nil {
			queue = append(queue, pending{p.layout.Left, loc, Left, p.path + ".left"})
		}
		if p.layout.Right != nil {
			queue = append(queue, pending{p.layout.Right, loc, Right, p.path + ".right"})
		}
	}
	return root, nil
}

// LayoutOf returns the layout describing an existing map.
func LayoutOf(root *Location) *Layout {
	if root == nil {
		return nil
	}
	l := &Layout{Name: root.name}
	if root.left != nil {
		l.Left = LayoutOf(root.left)
	}
	if root.right != nil {
		l.Right = LayoutOf(root.right)
	}
	return l
}

// DefaultLayout returns the Detective Quest mansion.
func DefaultLayout() *Layout {
	return &Layout{
		Name: "Hall de Entrada",
		Left: &Layout{
			Name: "Sala de Estar",
			Left: &Layout{
				Name: "Quarto dos Hóspedes",
				Left: &Layout{Name: "Banheiro Social"},
			},
			Right: &Layout{
				Name:  "Cozinha",
				Right: &Layout{Name: "Despensa"},
			},
		},
		Right: &Layout{
			Name: "Biblioteca",
			Left: &Layout{
				Name: "Escritório",
				Left: &Layout{Name: "Arquivo Secreto"},
			},
			Right: &Layout{Name: "Jardim de Inverno"},
		},
	}
}
