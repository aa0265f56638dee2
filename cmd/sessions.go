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
	"time"

	"github.com/octago/sflags/gen/gpflag"
	"github.com/spf13/cobra"

	"github.com/bbva/quest/journal"
	"github.com/bbva/quest/log"
)

type SessionsConfig struct {
	// Archive to list.
	Archive string `desc:"Archive file written by explore --archive"`
}

func newSessionsCommand() *cobra.Command {
	conf := &SessionsConfig{}

	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "List the sessions of an archive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			markStringRequired(conf.Archive, "archive")

			a, err := journal.OpenArchive(conf.Archive)
			if err != nil {
				return err
			}
			defer a.Close()

			recs, err := a.List()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, rec := range recs {
				recorded := time.Unix(0, rec.Recorded).UTC().Format(time.RFC3339)
				fmt.Fprintf(out, "%s  %s  %-15s %d rooms\n", rec.Session, recorded, rec.Reason, len(rec.Path))
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
