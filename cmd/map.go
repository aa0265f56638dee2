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
	"fmt"

	"github.com/octago/sflags/gen/gpflag"
	"github.com/spf13/cobra"

	"github.com/bbva/quest/log"
	"github.com/bbva/quest/quest"
	"github.com/bbva/quest/tree"
)

type MapConfig struct {
	// Path to a YAML, JSON or TOML map file.
	Map string `desc:"Path to a map file. The built-in mansion is used when empty"`

	// Print the alphabetical index of locations.
	Index bool `desc:"Also print the locations in alphabetical order with their path"`
}

func newMapCommand(ctx *cmdContext) *cobra.Command {
	conf := &MapConfig{}

	cmd := &cobra.Command{
		Use:   "map",
		Short: "Validate and print the mansion map",
		Long: `Loads the map the explore command would use, checks it and prints
it one location per line. Dead ends are marked with "*".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := quest.NewQuest(loadConfig(ctx, cmd), nil)
			if err != nil {
				log.Fatalf("Can't build the mansion: %v", err)
			}
			defer q.Close()

			return printMap(cmd, q, conf.Index)
		},
	}

	err := gpflag.ParseTo(conf, cmd.Flags())
	if err != nil {
		log.Fatalf("err: %v", err)
	}

	return cmd
}

func printMap(cmd *cobra.Command, q *quest.Quest, withIndex bool) error {
	out := cmd.OutOrStdout()

	if err := tree.Fprint(out, q.Root()); err != nil {
		return err
	}
	s := q.Stats()
	fmt.Fprintf(out, "\n%d locations, %d dead ends, depth %d\n", s.Locations, s.DeadEnds, s.Depth)

	if !withIndex {
		return nil
	}

	idx, err := tree.NewIndex(q.Root())
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	idx.Ascend(func(e tree.Entry) bool {
		path := e.Path
		if path == "" {
			path = "-"
		}
		fmt.Fprintf(out, "%-24s %s\n", e.Name, path)
		return true
	})
	return nil
}
