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

// Package cmd implements the quest command line.
package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bbva/quest/log"
)

var Root *cobra.Command = newRootCommand(os.Stdin)

func newRootCommand(in io.Reader) *cobra.Command {
	ctx := &cmdContext{in: in}

	cmd := &cobra.Command{
		Use:   "quest",
		Short: "Detective Quest mansion explorer",
		Long: `Quest lets a detective walk a mansion map room by room, choosing
left or right until reaching a dead end. Sessions can be journaled and
replayed.`,
		// SilenceUsage is set to true -> https://github.com/spf13/cobra/issues/340
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetLogger("quest", ctx.logLevel)
		},
	}

	f := cmd.PersistentFlags()
	f.StringVarP(&ctx.configFile, "config", "c", "", "Path to a YAML, JSON or TOML config file")
	f.StringVarP(&ctx.logLevel, "log", "l", "error", "Set log level to off, error, warn, info, debug or trace")

	cmd.AddCommand(
		newExploreCommand(ctx),
		newMapCommand(ctx),
		newReplayCommand(),
		newSessionsCommand(),
		newValidateCommand(),
		newVersionCommand(),
	)

	return cmd
}
