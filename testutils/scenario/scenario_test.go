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

package scenario

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecursive(t *testing.T) {
	let, report := New()

	var order []string
	let(t, "first level", func(t *testing.T) {
		order = append(order, "1")
		let(t, "second level 1", func(t *testing.T) {
			order = append(order, "2")
			let(t, "third level", func(t *testing.T) {
				order = append(order, "3")
			})
		})
		let(t, "second level 2", func(t *testing.T) {
			order = append(order, "4")
		})
	})

	require.Equal(t, []string{"1", "2", "3", "4"}, order)
	require.Equal(t, 4, strings.Count(report(), "-> ok!"))
}

func TestGherkin(t *testing.T) {
	let, report := New()
	defer func() {
		t.Logf("\n%v", report())
	}()
	steps := Gherkin(let)

	steps.Feature(t, "Door", func(t *testing.T) {
		var open bool
		steps.Scenario(t, "Player opens a closed door", func(t *testing.T) {
			steps.Given(t, "a closed door", func(t *testing.T) {
				False(t, open, "the door starts closed")
			})
			steps.When(t, "the player opens it", func(t *testing.T) {
				open = true
			})
			steps.Then(t, "the door is open", func(t *testing.T) {
				True(t, open, "the door must be open")
			})
		})
	})

	require.Contains(t, report(), "Then: the door is open -> ok!")
}

func TestCount(t *testing.T) {
	Count(t, "no path, no path", "no path", 2, "two matches")
}
