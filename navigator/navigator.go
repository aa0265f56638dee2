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

// Package navigator implements the interactive walk over a mansion map.
//
// The navigator is a two state machine. While AtLocation it shows the
// current location, then either stops at a dead end or prompts until the
// player picks an existing direction or quits. Terminated is absorbing.
// The cursor only moves onto locations that exist, so it is never nil
// while the navigator is AtLocation.
package navigator

import (
	"io"

	"github.com/pkg/errors"
	"golang.org/x/text/message"

	"github.com/bbva/quest/i18n"
	"github.com/bbva/quest/log"
	"github.com/bbva/quest/metrics"
	"github.com/bbva/quest/tree"
)

// ErrNoRoot is returned when a navigator is created without a map.
var ErrNoRoot = errors.New("navigator: nil root location")

// State of the navigator.
type State uint8

const (
	AtLocation State = iota
	Terminated
)

func (s State) String() string {
	if s == Terminated {
		return "terminated"
	}
	return "at_location"
}

// Reason tells why the navigator terminated.
type Reason uint8

const (
	None Reason = iota
	DeadEnd
	Quit
	InputExhausted
)

var reasonNames = map[Reason]string{
	None:           "none",
	DeadEnd:        "dead_end",
	Quit:           "quit",
	InputExhausted: "input_exhausted",
}

func (r Reason) String() string {
	if s, ok := reasonNames[r]; ok {
		return s
	}
	return "unknown"
}

// ParseReason is the inverse of Reason.String.
func ParseReason(s string) (Reason, error) {
	for r, name := range reasonNames {
		if name == s {
			return r, nil
		}
	}
	return None, errors.Errorf("navigator: unknown reason %q", s)
}

// EnterHook is called every time the navigator enters a location, right
// after its name is shown. Clue or suspect trackers plug in here.
type EnterHook func(loc *tree.Location)

// Result summarizes a finished (or ongoing) exploration.
type Result struct {
	Reason Reason
	// Path holds the names of the locations shown, in order.
	Path []string
	// Inputs holds every character read, valid or not.
	Inputs []string
	Moves  int
}

// Navigator walks a map interactively.
type Navigator struct {
	cursor *tree.Location
	state  State

	in      *Reader
	out     io.Writer
	printer *message.Printer
	markers Markers
	hooks   []EnterHook
	log     log.Logger

	result Result
	werr   error
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithPrinter sets the localized printer used for every message.
func WithPrinter(p *message.Printer) Option {
	return func(n *Navigator) { n.printer = p }
}

// WithMarkers sets the direction characters.
func WithMarkers(m Markers) Option {
	return func(n *Navigator) { n.markers = m }
}

// WithLogger sets the logger. It defaults to log.L().
func WithLogger(l log.Logger) Option {
	return func(n *Navigator) { n.log = l }
}

// WithEnterHook adds a hook run on every location entered.
func WithEnterHook(h EnterHook) Option {
	return func(n *Navigator) { n.hooks = append(n.hooks, h) }
}

// New returns a navigator positioned at root, reading the player's input
// from in and writing messages to out.
func New(root *tree.Location, in io.Reader, out io.Writer, opts ...Option) (*Navigator, error) {
	if root == nil {
		return nil, ErrNoRoot
	}

	n := &Navigator{
		cursor:  root,
		state:   AtLocation,
		in:      NewReader(in),
		out:     out,
		markers: DefaultMarkers(),
	}
	for _, opt := range opts {
		opt(n)
	}

	if err := n.markers.Validate(); err != nil {
		return nil, err
	}
	if n.printer == nil {
		p, err := i18n.NewPrinter(i18n.DefaultLocale)
		if err != nil {
			return nil, err
		}
		n.printer = p
	}
	if n.log == nil {
		n.log = log.L()
	}
	n.log = n.log.Named("navigator")

	return n, nil
}

// Cursor returns the current location.
func (n *Navigator) Cursor() *tree.Location {
	return n.cursor
}

// State returns the current state.
func (n *Navigator) State() State {
	return n.state
}

// Reason returns why the navigator terminated, or None.
func (n *Navigator) Reason() Reason {
	return n.result.Reason
}

// Result returns a copy of the exploration summary so far.
func (n *Navigator) Result() Result {
	r := n.result
	r.Path = append([]string(nil), n.result.Path...)
	r.Inputs = append([]string(nil), n.result.Inputs...)
	return r
}

// Run steps until the navigator terminates.
func (n *Navigator) Run() (Result, error) {
	for n.state != Terminated {
		if err := n.Step(); err != nil {
			return n.Result(), err
		}
	}
	return n.Result(), nil
}

// Step handles one entry into the current location: it shows it, and
// either terminates on a dead end or prompts until the player moves,
// quits or the input runs out. It does nothing once terminated.
func (n *Navigator) Step() error {
	if n.state == Terminated {
		return nil
	}

	loc := n.cursor
	n.enter(loc)

	if loc.IsTerminal() {
		n.printf(i18n.DeadEnd)
		n.terminate(DeadEnd)
		return n.werr
	}

	n.menu(loc)
	for {
		n.printf(i18n.Prompt)

		c, err := n.in.Next()
		if err != nil {
			n.printf(i18n.InputExhausted)
			n.terminate(InputExhausted)
			if err == io.EOF {
				return n.werr
			}
			return errors.Wrap(err, "navigator: reading input")
		}
		n.result.Inputs = append(n.result.Inputs, string(c))
		n.log.Tracef("read %q at %q", c, loc.Name())

		switch n.markers.Match(c) {
		case GoLeft:
			if next := loc.Left(); next != nil {
				n.move(tree.Left, next)
				return n.werr
			}
			n.blocked(tree.Left)
			n.printf(i18n.NoPathLeft)
		case GoRight:
			if next := loc.Right(); next != nil {
				n.move(tree.Right, next)
				return n.werr
			}
			n.blocked(tree.Right)
			n.printf(i18n.NoPathRight)
		case Exit:
			n.printf(i18n.Quit)
			n.terminate(Quit)
			return n.werr
		default:
			metrics.QuestInvalidInputsTotal.Inc()
			n.printf(i18n.Invalid, n.markers.Left, n.markers.Right, n.markers.Quit)
		}
	}
}

func (n *Navigator) enter(loc *tree.Location) {
	n.result.Path = append(n.result.Path, loc.Name())
	metrics.QuestLocationsEnteredTotal.Inc()
	n.log.Debugf("entering %q", loc.Name())

	n.printf(i18n.Location, loc.Name())
	for _, h := range n.hooks {
		h(loc)
	}
}

func (n *Navigator) menu(loc *tree.Location) {
	n.printf(i18n.Options)
	if left := loc.Left(); left != nil {
		n.printf(i18n.OptionLeft, n.markers.Left, left.Name())
	}
	if right := loc.Right(); right != nil {
		n.printf(i18n.OptionRight, n.markers.Right, right.Name())
	}
	n.printf(i18n.OptionQuit, n.markers.Quit)
}

func (n *Navigator) move(side tree.Side, next *tree.Location) {
	metrics.QuestMovesTotal.WithLabelValues(side.String()).Inc()
	n.log.Debugf("moving %s from %q to %q", side, n.cursor.Name(), next.Name())
	n.cursor = next
	n.result.Moves++
}

func (n *Navigator) blocked(side tree.Side) {
	metrics.QuestBlockedMovesTotal.WithLabelValues(side.String()).Inc()
	n.log.Debugf("no path %s from %q", side, n.cursor.Name())
}

func (n *Navigator) terminate(reason Reason) {
	n.state = Terminated
	n.result.Reason = reason
	metrics.QuestTerminationsTotal.WithLabelValues(reason.String()).Inc()
	n.log.Infof("exploration ended at %q: %s", n.cursor.Name(), reason)
}

// printf keeps the first write error, which is returned when the step ends.
func (n *Navigator) printf(key string, args ...interface{}) {
	if _, err := n.printer.Fprintf(n.out, key, args...); err != nil && n.werr == nil {
		n.werr = errors.Wrap(err, "navigator: writing output")
	}
}
