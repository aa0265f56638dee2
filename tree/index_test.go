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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIndexOrder(t *testing.T) {
	root, err := DefaultLayout().Build()
	require.NoError(t, err)

	idx, err := NewIndex(root)
	require.NoError(t, err)
	require.Equal(t, 10, idx.Len())

	require.Equal(t, []string{
		"Arquivo Secreto", "Banheiro Social", "Biblioteca", "Cozinha", "Despensa",
		"Escritório", "Hall de Entrada", "Jardim de Inverno", "Quarto dos Hóspedes", "Sala de Estar",
	}, idx.Names())

	var first Entry
	idx.Ascend(func(e Entry) bool {
		first = e
		return false
	})
	require.Equal(t, Entry{Name: "Arquivo Secreto", Path: "RLL", Depth: 3, Terminal: true}, first)
}

func TestIndexLookup(t *testing.T) {
	root := New("Hall")
	den := root.Attach(Left, New("Den"))
	den.Attach(Left, New("Den"))
	root.Attach(Right, New("Library"))

	idx, err := NewIndex(root)
	require.NoError(t, err)

	found := idx.Lookup("Den")
	require.Equal(t, []Entry{
		{Name: "Den", Path: "L", Depth: 1},
		{Name: "Den", Path: "LL", Depth: 2, Terminal: true},
	}, found)
	require.Empty(t, idx.Lookup("Attic"))
	require.Equal(t, []string{"Den", "Hall", "Library"}, idx.Names())
}

func TestIndexNilRoot(t *testing.T) {
	_, err := NewIndex(nil)
	require.Equal(t, ErrNilRoot, err)
}
