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
	"io"
	"io/ioutil"

	"github.com/octago/sflags/gen/gpflag"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bbva/quest/i18n"
	"github.com/bbva/quest/journal"
	"github.com/bbva/quest/log"
	"github.com/bbva/quest/navigator"
	"github.com/bbva/quest/quest"
)

type ReplayConfig struct {
	// Show the navigator output while replaying.
	Show bool `desc:"Print the replayed exploration"`

	// Archive holding the session to replay.
	Archive string `desc:"Replay a session from this archive. The argument is then the session id"`
}

var reasonMessages = map[navigator.Reason]string{
	navigator.DeadEnd:        i18n.ReasonDeadEnd,
	navigator.Quit:           i18n.ReasonQuit,
	navigator.InputExhausted: i18n.ReasonExhausted,
}

func newReplayCommand() *cobra.Command {
	conf := &ReplayConfig{}

	cmd := &cobra.Command{
		Use:   "replay <journal|session>",
		Short: "Replay a session journal",
		Long: `Rebuilds the map stored in a session journal, feeds it the recorded
input and checks the exploration ends exactly as it did when recorded.
Exits with an error if it does not.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			markStringRequired(args[0], "journal")

			rec, err := readRecord(conf, args[0])
			if err != nil {
				return err
			}
			log.Debugf("replaying session %s recorded in %s", rec.Session, rec.Locale)

			out := cmd.OutOrStdout()
			var trace io.Writer = ioutil.Discard
			if conf.Show {
				trace = out
			}

			printer, err := i18n.NewPrinter(rec.Locale)
			if err != nil {
				printer = i18n.MustPrinter(i18n.DefaultLocale)
			}

			res, err := quest.Replay(rec, trace)
			if errors.Cause(err) == quest.ErrDiverged {
				printer.Fprintf(out, i18n.ReplayDiverged, err)
				return err
			}
			if err != nil {
				return err
			}

			printer.Fprintf(out, i18n.ReplayMatched, len(res.Path), printer.Sprintf(reasonMessages[res.Reason]))
			return nil
		},
	}

	err := gpflag.ParseTo(conf, cmd.Flags())
	if err != nil {
		log.Fatalf("err: %v", err)
	}

	return cmd
}

func readRecord(conf *ReplayConfig, arg string) (journal.Record, error) {
	if conf.Archive == "" {
		return journal.ReadFile(arg)
	}

	a, err := journal.OpenArchive(conf.Archive)
	if err != nil {
		return journal.Record{}, err
	}
	defer a.Close()
	return a.Get(arg)
}
