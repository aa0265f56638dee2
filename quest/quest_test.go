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

package quest

import (
	"bytes"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/bbva/quest/journal"
	"github.com/bbva/quest/navigator"
	"github.com/bbva/quest/tree"
)

func englishConfig() *Config {
	conf := DefaultConfig()
	conf.Locale = "en-US"
	return conf
}

func TestNewQuestDefaultMansion(t *testing.T) {
	q, err := NewQuest(englishConfig(), nil)
	require.NoError(t, err)

	require.Equal(t, "Hall de Entrada", q.Root().Name())
	require.Equal(t, tree.Stats{Locations: 10, DeadEnds: 4, Depth: 3}, q.Stats())
	require.NotEmpty(t, q.Session())

	require.Equal(t, 10, q.Close())
	require.Equal(t, 0, q.Close(), "closing twice releases nothing")
	require.Nil(t, q.Root())

	_, err = q.Run(strings.NewReader("e"), ioutil.Discard)
	require.Equal(t, ErrClosed, err)
}

func TestNewQuestMapSources(t *testing.T) {
	dir, clean := tempDir(t)
	defer clean()

	conf := englishConfig()
	conf.Mansion = &tree.Layout{Name: "Porch"}
	q, err := NewQuest(conf, nil)
	require.NoError(t, err)
	require.Equal(t, "Porch", q.Root().Name())
	q.Close()

	conf.Map = writeFile(t, dir, "map.yaml", yamlMap)
	q, err = NewQuest(conf, nil)
	require.NoError(t, err)
	require.Equal(t, "Hall", q.Root().Name(), "the map file wins over the embedded mansion")
	require.Equal(t, 4, q.Close())
}

func TestNewQuestErrors(t *testing.T) {
	dir, clean := tempDir(t)
	defer clean()

	conf := englishConfig()
	conf.Left = "dd"
	_, err := NewQuest(conf, nil)
	require.Equal(t, navigator.ErrInvalidMarker, errors.Cause(err))

	conf = englishConfig()
	conf.Map = writeFile(t, dir, "unnamed.yaml", "name: Hall\nleft:\n  name: ''\n")
	_, err = NewQuest(conf, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "root.left")

	conf = englishConfig()
	conf.Map = filepath.Join(dir, "missing.yaml")
	_, err = NewQuest(conf, nil)
	require.Error(t, err)
}

func TestRun(t *testing.T) {
	var out bytes.Buffer
	q, err := NewQuest(englishConfig(), nil)
	require.NoError(t, err)
	defer q.Close()

	var entered int
	res, err := q.Run(strings.NewReader("d d"), &out, func(*tree.Location) { entered++ })
	require.NoError(t, err)

	require.Equal(t, navigator.DeadEnd, res.Reason)
	require.Equal(t, []string{"Hall de Entrada", "Biblioteca", "Jardim de Inverno"}, res.Path)
	require.Equal(t, 3, entered)

	text := out.String()
	require.True(t, strings.HasPrefix(text, "=== DETECTIVE QUEST"))
	require.Contains(t, text, "Starting the exploration at Hall de Entrada")
	require.True(t, strings.HasSuffix(text, "Thanks for playing Detective Quest!\n"))
}

type brokenBannerWriter struct {
	writes int
	out    bytes.Buffer
}

func (w *brokenBannerWriter) Write(p []byte) (int, error) {
	w.writes++
	if w.writes == 1 {
		return 0, errors.New("closed stdout")
	}
	return w.out.Write(p)
}

func TestRunReportsBannerWriteError(t *testing.T) {
	q, err := NewQuest(englishConfig(), nil)
	require.NoError(t, err)
	defer q.Close()

	w := &brokenBannerWriter{}
	res, err := q.Run(strings.NewReader("d d"), w)
	require.Error(t, err)
	require.Contains(t, err.Error(), "closed stdout")
	require.Equal(t, navigator.DeadEnd, res.Reason, "the exploration still runs")
	require.Contains(t, w.out.String(), "Thanks for playing")
}

func TestRunQuiet(t *testing.T) {
	var out bytes.Buffer
	conf := englishConfig()
	conf.Quiet = true
	q, err := NewQuest(conf, nil)
	require.NoError(t, err)
	defer q.Close()

	_, err = q.Run(strings.NewReader("s"), &out)
	require.NoError(t, err)
	require.NotContains(t, out.String(), "DETECTIVE QUEST")
	require.NotContains(t, out.String(), "Thanks for playing")
}

func TestRunWritesJournalAndMetrics(t *testing.T) {
	dir, clean := tempDir(t)
	defer clean()

	conf := englishConfig()
	conf.Quiet = true
	conf.Journal = filepath.Join(dir, "session.qj")
	conf.Metrics = filepath.Join(dir, "quest.prom")

	q, err := NewQuest(conf, nil)
	require.NoError(t, err)
	res, err := q.Run(strings.NewReader("x e e"), ioutil.Discard)
	require.NoError(t, err)
	q.Close()

	rec, err := journal.ReadFile(conf.Journal)
	require.NoError(t, err)
	require.Equal(t, q.Session(), rec.Session)
	require.Equal(t, "en-US", rec.Locale)
	require.Equal(t, journal.Markers{Left: "e", Right: "d", Quit: "s"}, rec.Markers)
	require.Equal(t, tree.DefaultLayout(), rec.Layout)
	require.Equal(t, []string{"x", "e", "e"}, rec.Inputs)
	require.Equal(t, res.Path, rec.Path)
	require.Equal(t, "input_exhausted", rec.Reason)

	prom, err := ioutil.ReadFile(conf.Metrics)
	require.NoError(t, err)
	require.Contains(t, string(prom), "quest_map_locations 10")
	require.Contains(t, string(prom), "quest_map_dead_ends 4")
	require.Contains(t, string(prom), "quest_map_depth 3")
	require.Contains(t, string(prom), "quest_invalid_inputs_total")
}

func TestRunArchivesSessions(t *testing.T) {
	dir, clean := tempDir(t)
	defer clean()

	conf := englishConfig()
	conf.Quiet = true
	conf.Archive = filepath.Join(dir, "sessions.db")

	var sessions []string
	for _, input := range []string{"s", "e e e"} {
		q, err := NewQuest(conf, nil)
		require.NoError(t, err)
		_, err = q.Run(strings.NewReader(input), ioutil.Discard)
		require.NoError(t, err)
		q.Close()
		sessions = append(sessions, q.Session())
	}
	require.NotEqual(t, sessions[0], sessions[1])

	a, err := journal.OpenArchive(conf.Archive)
	require.NoError(t, err)
	defer a.Close()

	recs, err := a.List()
	require.NoError(t, err)
	require.Len(t, recs, 2)
	require.Equal(t, sessions[0], recs[0].Session)
	require.Equal(t, "quit", recs[0].Reason)
	require.Equal(t, "dead_end", recs[1].Reason)

	_, err = Replay(recs[1], ioutil.Discard)
	require.NoError(t, err)
}

func TestReplay(t *testing.T) {
	dir, clean := tempDir(t)
	defer clean()

	conf := englishConfig()
	conf.Quiet = true
	conf.Journal = filepath.Join(dir, "session.qj")
	conf.Left, conf.Right, conf.Quit = "l", "r", "q"

	q, err := NewQuest(conf, nil)
	require.NoError(t, err)
	recorded, err := q.Run(strings.NewReader("r ? l q"), ioutil.Discard)
	require.NoError(t, err)
	q.Close()

	rec, err := journal.ReadFile(conf.Journal)
	require.NoError(t, err)

	var out bytes.Buffer
	replayed, err := Replay(rec, &out)
	require.NoError(t, err)
	require.Equal(t, recorded, replayed)
	require.Contains(t, out.String(), "Leaving the exploration")

	rec.Inputs = []string{"r", "l", "l"}
	_, err = Replay(rec, ioutil.Discard)
	require.Equal(t, ErrDiverged, errors.Cause(err))

	rec.Inputs = []string{"l", "q"}
	_, err = Replay(rec, ioutil.Discard)
	require.Equal(t, ErrDiverged, errors.Cause(err))

	rec.Layout = nil
	_, err = Replay(rec, ioutil.Discard)
	require.Equal(t, tree.ErrEmptyLayout, errors.Cause(err))
}
