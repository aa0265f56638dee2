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
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bbva/quest/log"
	"github.com/bbva/quest/quest"
)

type ValidateConfig struct {
	// Glob patterns to leave out.
	Exclude []string `desc:"Skip map files matching these patterns (** allowed)"`
}

func newValidateCommand() *cobra.Command {
	conf := &ValidateConfig{}

	cmd := &cobra.Command{
		Use:   "validate <pattern>...",
		Short: "Check many map files at once",
		Long: `Loads and builds every map file matching the given glob patterns.
Patterns may use "**" to cross directories. Every file gets one line with
its size or the reason it was rejected.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reports, err := quest.CheckMaps(args, conf.Exclude)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var failed int
			for _, r := range reports {
				if r.Err != nil {
					failed++
					log.Debugf("Rejected map %s: %v", r.Path, r.Err)
					fmt.Fprintf(out, "FAIL  %s: %v\n", r.Path, r.Err)
					continue
				}
				fmt.Fprintf(out, "ok    %s: %d locations, %d dead ends, depth %d\n",
					r.Path, r.Stats.Locations, r.Stats.DeadEnds, r.Stats.Depth)
			}

			if failed > 0 {
				return errors.Errorf("%d of %d map files are invalid", failed, len(reports))
			}
			return nil
		},
	}

	err := gpflag.ParseTo(conf, cmd.Flags())
	if err != nil {
		log.Fatalf("err: %v", err)
	}

	return cmd
}
