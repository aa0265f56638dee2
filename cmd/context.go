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

	"github.com/spf13/cobra"

	"github.com/bbva/quest/log"
	"github.com/bbva/quest/quest"
)

type cmdContext struct {
	logLevel, configFile string
	in                   io.Reader
}

// loadConfig merges the config file, the environment and the command
// flags. Any failure is fatal.
func loadConfig(ctx *cmdContext, cmd *cobra.Command) *quest.Config {
	conf, err := quest.ReadConfigFile(ctx.configFile, cmd.Flags())
	if err != nil {
		log.Fatalf("Can't read the configuration: %v", err)
	}
	if err := conf.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if err := pathParse(conf.Journal, conf.Metrics); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return conf
}

func markStringRequired(value, name string) {
	if value == "" {
		log.Fatalf("Argument `%s` is required", name)
	}
}
