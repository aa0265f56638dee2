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
	"github.com/octago/sflags/gen/gpflag"
	"github.com/spf13/cobra"

	"github.com/bbva/quest/log"
	"github.com/bbva/quest/quest"
)

func newExploreCommand(ctx *cmdContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Explore the mansion interactively",
		Long: `Shows the current room and the available paths, and reads one
character per move from the standard input: left, right or quit.
The exploration ends at a dead end, on quit or when the input runs out.`,
		Args: cobra.NoArgs,
		RunE: runExplore(ctx),
	}

	err := gpflag.ParseTo(quest.DefaultConfig(), cmd.Flags())
	if err != nil {
		log.Fatalf("err: %v", err)
	}

	return cmd
}

func runExplore(ctx *cmdContext) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		conf := loadConfig(ctx, cmd)
		logger := log.SetLogger("quest", conf.Log)

		q, err := quest.NewQuest(conf, logger)
		if err != nil {
			log.Fatalf("Can't build the mansion: %v", err)
		}
		defer q.Close()

		res, err := q.Run(ctx.in, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		logger.Debugf("session %s ended by %s after %d moves", q.Session(), res.Reason, res.Moves)
		return nil
	}
}
