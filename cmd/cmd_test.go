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

package cmd

import (
	"bytes"
	"io/ioutil"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bbva/quest/journal"
	"github.com/bbva/quest/testutils/scenario"
)

func execute(input string, args ...string) (string, error) {
	root := newRootCommand(strings.NewReader(input))
	var out bytes.Buffer
	root.SetOutput(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func tempDir(t *testing.T) (string, func()) {
	dir, err := ioutil.TempDir("", "quest-cmd")
	require.NoError(t, err)
	return dir, func() { os.RemoveAll(dir) }
}

func TestExploreAndReplay(t *testing.T) {
	dir, clean := tempDir(t)
	defer clean()
	path := filepath.Join(dir, "session.qj")

	let, report := scenario.New()
	defer func() {
		t.Logf("\n%v", report())
	}()
	steps := scenario.Gherkin(let)

	steps.Feature(t, "Recorded explorations can be replayed", func(t *testing.T) {
		var out string
		steps.Given(t, "a player who enters the living room and quits", func(t *testing.T) {
			var err error
			out, err = execute("e s", "explore", "--locale", "en-US", "--journal", path)
			scenario.NoError(t, err, "explore")
		})

		steps.Then(t, "the session is shown and journaled", func(t *testing.T) {
			scenario.Count(t, out, "DETECTIVE QUEST", 1, "banner")
			scenario.Count(t, out, "You are at: Hall de Entrada", 1, "root")
			scenario.Count(t, out, "You are at: Sala de Estar", 1, "living room")
			scenario.Count(t, out, "Leaving the exploration", 1, "quit")

			rec, err := journal.ReadFile(path)
			scenario.NoError(t, err, "reading journal")
			scenario.Equal(t, "quit", rec.Reason, "recorded reason")
		})

		steps.When(t, "the journal is replayed", func(t *testing.T) {
			out, err := execute("", "replay", path)
			scenario.NoError(t, err, "replay")
			scenario.Equal(t, "Replay matched: 2 rooms visited, ended by player quit.\n", out, "replay outcome")
		})

		steps.When(t, "the journal is replayed showing the exploration", func(t *testing.T) {
			out, err := execute("", "replay", "--show", path)
			scenario.NoError(t, err, "replay")
			scenario.Count(t, out, "You are at: Sala de Estar", 1, "replayed room")
			scenario.Count(t, out, "DETECTIVE QUEST", 0, "no banner on replay")
		})

		steps.When(t, "the journal is tampered with", func(t *testing.T) {
			rec, err := journal.ReadFile(path)
			scenario.NoError(t, err, "reading journal")
			rec.Path = []string{"Hall de Entrada", "Biblioteca"}
			scenario.NoError(t, journal.WriteFile(path, rec), "writing journal")

			out, err := execute("", "replay", path)
			scenario.True(t, err != nil, "a diverged replay fails")
			scenario.Count(t, out, "Replay diverged", 1, "diverged message")
		})
	})
}

func TestArchivedSessions(t *testing.T) {
	dir, clean := tempDir(t)
	defer clean()
	archive := filepath.Join(dir, "sessions.db")

	_, err := execute("s", "explore", "--quiet", "--archive", archive)
	require.NoError(t, err)
	_, err = execute("d d", "explore", "--quiet", "--archive", archive)
	require.NoError(t, err)

	out, err := execute("", "sessions", "--archive", archive)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], "quit")
	require.Contains(t, lines[0], "1 rooms")
	require.Contains(t, lines[1], "dead_end")
	require.Contains(t, lines[1], "3 rooms")

	session := strings.Fields(lines[1])[0]
	out, err = execute("", "replay", "--archive", archive, session)
	require.NoError(t, err)
	require.Equal(t, "Reprodução idêntica: 3 salas visitadas, término por cômodo sem saída.\n", out)

	_, err = execute("", "replay", "--archive", archive, "unknown-session")
	require.Error(t, err)
}

func TestExploreDefaultLocale(t *testing.T) {
	out, err := execute("d d", "explore", "--quiet")
	require.NoError(t, err)
	require.Contains(t, out, "Você está no: Jardim de Inverno")
	require.Contains(t, out, "Este é um cômodo sem saída")
	require.NotContains(t, out, "DETECTIVE QUEST")
}

func TestExploreWithConfigFile(t *testing.T) {
	dir, clean := tempDir(t)
	defer clean()

	config := filepath.Join(dir, "quest.yaml")
	require.NoError(t, ioutil.WriteFile(config, []byte(`
locale: en-US
quiet: true
left: a
mansion:
  name: Porch
  left:
    name: Shed
`), 0644))

	out, err := execute("a", "explore", "--config", config)
	require.NoError(t, err)
	require.Contains(t, out, "You are at: Shed")
	require.Contains(t, out, "[a] - Go left (Shed)")
	require.Contains(t, out, "This room is a dead end")
}

func TestMap(t *testing.T) {
	out, err := execute("", "map")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "Hall de Entrada\n  Sala de Estar\n    Quarto dos Hóspedes\n      Banheiro Social *\n"))
	require.Contains(t, out, "10 locations, 4 dead ends, depth 3")
	require.NotContains(t, out, "RLL")

	out, err = execute("", "map", "--index")
	require.NoError(t, err)
	require.Contains(t, out, "Arquivo Secreto          RLL\n")
	require.Contains(t, out, "Hall de Entrada          -\n")
}

func TestMapFile(t *testing.T) {
	dir, clean := tempDir(t)
	defer clean()

	path := filepath.Join(dir, "map.json")
	require.NoError(t, ioutil.WriteFile(path, []byte(`{"name": "Hall", "right": {"name": "Garden"}}`), 0644))

	out, err := execute("", "map", "--map", path)
	require.NoError(t, err)
	require.Equal(t, "Hall\n  Garden *\n\n2 locations, 1 dead ends, depth 1\n", out)
}

func TestValidate(t *testing.T) {
	dir, clean := tempDir(t)
	defer clean()

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "wing"), 0755))
	good := filepath.Join(dir, "wing", "garden.json")
	bad := filepath.Join(dir, "wing", "cellar.yaml")
	require.NoError(t, ioutil.WriteFile(good, []byte(`{"name": "Hall", "right": {"name": "Garden"}}`), 0644))
	require.NoError(t, ioutil.WriteFile(bad, []byte("name: Hall\nleft:\n  right:\n    name: Cellar\n"), 0644))

	out, err := execute("", "validate", filepath.Join(dir, "**", "*.json"))
	require.NoError(t, err)
	require.Equal(t, "ok    "+good+": 2 locations, 1 dead ends, depth 1\n", out)

	out, err = execute("", "validate", filepath.Join(dir, "**", "*"), "--exclude", filepath.Join(dir, "**", "*.json"))
	require.Error(t, err)
	require.Contains(t, out, "FAIL  "+bad)
	require.Contains(t, out, "root.left")
	require.NotContains(t, out, good)

	_, err = execute("", "validate")
	require.Error(t, err, "a pattern is required")
}

func TestReplayErrors(t *testing.T) {
	_, err := execute("", "replay")
	require.Error(t, err, "the journal argument is required")

	_, err = execute("", "replay", filepath.Join(os.TempDir(), "quest-missing.qj"))
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute("", "version")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "Quest "))
}

func TestExploreFatalOnInvalidMarkers(t *testing.T) {
	if os.Getenv("BE_CRASHER") == "1" {
		execute("", "explore", "--left", "ee")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExploreFatalOnInvalidMarkers")
	cmd.Env = append(os.Environ(), "BE_CRASHER=1")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	e, ok := err.(*exec.ExitError)
	require.True(t, ok, "the process must exit with an error")
	require.False(t, e.Success())
	require.Contains(t, stderr.String(), "Invalid configuration")
}
