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

// Package quest builds a mansion map from the configuration, lets a
// player explore it and tears it down afterwards.
package quest

import (
	"io"
	"strings"
	"time"

	"github.com/pborman/uuid"
	"github.com/pkg/errors"
	"golang.org/x/text/message"

	"github.com/bbva/quest/i18n"
	"github.com/bbva/quest/journal"
	"github.com/bbva/quest/log"
	"github.com/bbva/quest/metrics"
	"github.com/bbva/quest/navigator"
	"github.com/bbva/quest/tree"
)

var (
	// ErrClosed is returned when using a quest whose map was destroyed.
	ErrClosed = errors.New("quest: closed")

	// ErrDiverged is returned by Replay when the recorded inputs no longer
	// lead to the recorded outcome.
	ErrDiverged = errors.New("quest: replay diverged")
)

// Quest encapsulates a map and the settings to explore it.
type Quest struct {
	conf    *Config
	log     log.Logger
	session string

	layout  *tree.Layout
	root    *tree.Location
	stats   tree.Stats
	printer *message.Printer
	markers navigator.Markers
}

// NewQuest validates the configuration and builds the map, taken from
// the map file, the mansion embedded in the config, or the built-in
// mansion, in that order.
func NewQuest(conf *Config, logger log.Logger) (*Quest, error) {
	if logger == nil {
		logger = log.L()
	}
	q := &Quest{
		conf:    conf,
		log:     logger.Named("quest"),
		session: uuid.New(),
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}
	q.markers, _ = conf.Markers()

	var err error
	q.printer, err = i18n.NewPrinter(conf.Locale)
	if err != nil {
		return nil, err
	}

	switch {
	case conf.Map != "":
		q.log.Infof("loading map from %s", conf.Map)
		q.layout, err = LoadLayout(conf.Map)
		if err != nil {
			return nil, err
		}
	case conf.Mansion != nil:
		q.log.Info("using the map embedded in the config file")
		q.layout = conf.Mansion
	default:
		q.log.Debug("using the built-in mansion")
		q.layout = tree.DefaultLayout()
	}

	q.root, err = q.layout.Build()
	if err != nil {
		return nil, errors.Wrap(err, "quest: building map")
	}
	q.stats, err = tree.Measure(q.root)
	if err != nil {
		tree.Destroy(q.root)
		return nil, errors.Wrap(err, "quest: invalid map")
	}

	metrics.QuestMapLocations.Set(float64(q.stats.Locations))
	metrics.QuestMapDeadEnds.Set(float64(q.stats.DeadEnds))
	metrics.QuestMapDepth.Set(float64(q.stats.Depth))
	q.log.Infof("map ready: %d locations, %d dead ends, depth %d", q.stats.Locations, q.stats.DeadEnds, q.stats.Depth)

	return q, nil
}

// Root returns the entry location, or nil once closed.
func (q *Quest) Root() *tree.Location {
	return q.root
}

// Stats returns the shape of the map.
func (q *Quest) Stats() tree.Stats {
	return q.stats
}

// Session identifies this quest in journals and logs.
func (q *Quest) Session() string {
	return q.session
}

// Run lets the player explore the map reading from in and writing to
// out. Once the exploration ends the session is written to the journal
// file and the archive, and the metrics are exported, as configured.
func (q *Quest) Run(in io.Reader, out io.Writer, hooks ...navigator.EnterHook) (navigator.Result, error) {
	if q.root == nil {
		return navigator.Result{}, ErrClosed
	}

	var werr error
	printf := func(key string, args ...interface{}) {
		if _, err := q.printer.Fprintf(out, key, args...); err != nil && werr == nil {
			werr = errors.Wrap(err, "quest: writing output")
		}
	}

	if !q.conf.Quiet {
		printf(i18n.Banner)
		printf(i18n.MapReady, q.root.Name())
	}

	opts := []navigator.Option{
		navigator.WithPrinter(q.printer),
		navigator.WithMarkers(q.markers),
		navigator.WithLogger(q.log),
	}
	for _, h := range hooks {
		opts = append(opts, navigator.WithEnterHook(h))
	}

	nav, err := navigator.New(q.root, in, out, opts...)
	if err != nil {
		return navigator.Result{}, err
	}
	res, runErr := nav.Run()

	if !q.conf.Quiet {
		printf(i18n.Farewell)
	}

	rec := q.record(res)
	if q.conf.Journal != "" {
		if err := journal.WriteFile(q.conf.Journal, rec); err != nil {
			return res, err
		}
		q.log.Infof("journal written to %s", q.conf.Journal)
	}
	if q.conf.Archive != "" {
		if err := archive(q.conf.Archive, rec); err != nil {
			return res, err
		}
		q.log.Infof("session %s archived in %s", q.session, q.conf.Archive)
	}
	if q.conf.Metrics != "" {
		if err := metrics.WriteTextfile(q.conf.Metrics); err != nil {
			return res, err
		}
		q.log.Infof("metrics written to %s", q.conf.Metrics)
	}

	if runErr != nil {
		return res, runErr
	}
	return res, werr
}

func (q *Quest) record(res navigator.Result) journal.Record {
	tag, _ := i18n.Match(q.conf.Locale)
	return journal.Record{
		Version:  journal.Version,
		Session:  q.session,
		Recorded: time.Now().UnixNano(),
		Locale:   tag.String(),
		Markers: journal.Markers{
			Left:  string(q.markers.Left),
			Right: string(q.markers.Right),
			Quit:  string(q.markers.Quit),
		},
		Layout: q.layout,
		Inputs: res.Inputs,
		Path:   res.Path,
		Reason: res.Reason.String(),
	}
}

func archive(path string, rec journal.Record) error {
	a, err := journal.OpenArchive(path)
	if err != nil {
		return err
	}
	if err := a.Put(rec); err != nil {
		a.Close()
		return err
	}
	return a.Close()
}

// Close destroys the map and returns the number of locations released.
// Closing twice releases nothing.
func (q *Quest) Close() int {
	if q.root == nil {
		return 0
	}
	n := tree.Destroy(q.root)
	q.root = nil
	q.log.Debugf("released %d locations", n)
	return n
}

// Replay rebuilds the recorded map, feeds it the recorded inputs and
// checks the exploration ends the same way. The navigator text goes to
// out.
func Replay(rec journal.Record, out io.Writer) (navigator.Result, error) {
	conf := DefaultConfig()
	if rec.Locale != "" {
		conf.Locale = rec.Locale
	}
	conf.Left, conf.Right, conf.Quit = rec.Markers.Left, rec.Markers.Right, rec.Markers.Quit
	conf.Mansion = rec.Layout
	conf.Quiet = true

	if conf.Mansion == nil {
		return navigator.Result{}, errors.Wrap(tree.ErrEmptyLayout, "quest: journal without map")
	}

	q, err := NewQuest(conf, nil)
	if err != nil {
		return navigator.Result{}, err
	}
	defer q.Close()

	res, err := q.Run(strings.NewReader(strings.Join(rec.Inputs, " ")), out)
	if err != nil {
		return res, err
	}

	if got := res.Reason.String(); got != rec.Reason {
		return res, errors.Wrapf(ErrDiverged, "ended by %s, recorded %s", got, rec.Reason)
	}
	if !equal(res.Path, rec.Path) {
		return res, errors.Wrapf(ErrDiverged, "visited %s, recorded %s",
			strings.Join(res.Path, " > "), strings.Join(rec.Path, " > "))
	}
	return res, nil
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
