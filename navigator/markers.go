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

package navigator

import (
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// ErrInvalidMarker is returned for markers that are blank, longer than
// one character or that collide with each other.
var ErrInvalidMarker = errors.New("navigator: invalid marker")

// Command is what a typed character asks the navigator to do.
type Command uint8

const (
	Unknown Command = iota
	GoLeft
	GoRight
	Exit
)

// Markers are the characters the player types to move. They are matched
// without regard to case.
type Markers struct {
	Left  rune
	Right rune
	Quit  rune
}

// DefaultMarkers returns the Portuguese markers: e (esquerda),
// d (direita) and s (sair).
func DefaultMarkers() Markers {
	return Markers{Left: 'e', Right: 'd', Quit: 's'}
}

// ParseMarkers builds Markers from one character strings.
func ParseMarkers(left, right, quit string) (Markers, error) {
	var m Markers
	for _, p := range []struct {
		name  string
		value string
		dst   *rune
	}{
		{"left", left, &m.Left},
		{"right", right, &m.Right},
		{"quit", quit, &m.Quit},
	} {
		if utf8.RuneCountInString(p.value) != 1 {
			return Markers{}, errors.Wrapf(ErrInvalidMarker, "%s marker %q must be a single character", p.name, p.value)
		}
		*p.dst, _ = utf8.DecodeRuneInString(p.value)
	}
	return m, m.Validate()
}

// Validate checks that the three markers are printable and distinct.
func (m Markers) Validate() error {
	for _, r := range []rune{m.Left, m.Right, m.Quit} {
		if r == 0 || unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return errors.Wrapf(ErrInvalidMarker, "%q is not a usable marker", r)
		}
	}
	l, r, q := unicode.ToLower(m.Left), unicode.ToLower(m.Right), unicode.ToLower(m.Quit)
	if l == r || l == q || r == q {
		return errors.Wrapf(ErrInvalidMarker, "markers %q, %q and %q must be distinct", m.Left, m.Right, m.Quit)
	}
	return nil
}

// Match returns the command a typed character stands for.
func (m Markers) Match(c rune) Command {
	switch unicode.ToLower(c) {
	case unicode.ToLower(m.Left):
		return GoLeft
	case unicode.ToLower(m.Right):
		return GoRight
	case unicode.ToLower(m.Quit):
		return Exit
	default:
		return Unknown
	}
}
