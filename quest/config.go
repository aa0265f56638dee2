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
	"github.com/imdario/mergo"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/bbva/quest/i18n"
	"github.com/bbva/quest/log"
	"github.com/bbva/quest/navigator"
	"github.com/bbva/quest/tree"
)

// EnvPrefix prefixes the environment variables read by quest,
// e.g. QUEST_LOCALE.
const EnvPrefix = "QUEST"

type Config struct {
	// Log level
	Log string `flag:"-" mapstructure:"log"`

	// Locale of the player messages.
	Locale string `desc:"Language of the game messages (pt-BR or en-US)" mapstructure:"locale"`

	// Path to a YAML, JSON or TOML map file.
	Map string `desc:"Path to a map file. The built-in mansion is used when empty" mapstructure:"map"`

	// Direction markers.
	Left  string `desc:"Character that moves to the left" mapstructure:"left"`
	Right string `desc:"Character that moves to the right" mapstructure:"right"`
	Quit  string `desc:"Character that ends the exploration" mapstructure:"quit"`

	// Path where the session journal is written.
	Journal string `desc:"Write the session journal to this file" mapstructure:"journal"`

	// Path of the bolt archive where every session is kept.
	Archive string `desc:"Also keep the session journal in this archive file" mapstructure:"archive"`

	// Path where the session metrics are written.
	Metrics string `desc:"Write session metrics in Prometheus text format to this file" mapstructure:"metrics"`

	// Hide banner and farewell.
	Quiet bool `desc:"Do not show the banner and the farewell" mapstructure:"quiet"`

	// Map embedded in the config file. Ignored when Map is set.
	Mansion *tree.Layout `flag:"-" mapstructure:"mansion"`
}

func DefaultConfig() *Config {
	m := navigator.DefaultMarkers()
	return &Config{
		Log:    "error",
		Locale: i18n.DefaultLocale,
		Left:   string(m.Left),
		Right:  string(m.Right),
		Quit:   string(m.Quit),
	}
}

// Markers parses the configured direction markers.
func (c *Config) Markers() (navigator.Markers, error) {
	return navigator.ParseMarkers(c.Left, c.Right, c.Quit)
}

// Validate checks every setting that can be checked before the map is
// loaded.
func (c *Config) Validate() error {
	if log.LevelFromString(c.Log) == log.NotSet {
		return errors.Errorf("quest: unknown log level %q", c.Log)
	}
	if _, err := i18n.Match(c.Locale); err != nil {
		return err
	}
	if _, err := c.Markers(); err != nil {
		return err
	}
	return nil
}

// ReadConfigFile builds a Config from, in decreasing priority, the flags
// explicitly set, QUEST_ environment variables, the config file at path
// (if any) and the defaults. Flags not set by the user only provide
// defaults.
func ReadConfigFile(path string, flags *pflag.FlagSet) (*Config, error) {
	vp := viper.New()
	vp.SetEnvPrefix(EnvPrefix)
	vp.AutomaticEnv()

	if path != "" {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return nil, errors.Wrapf(err, "quest: expanding %s", path)
		}
		vp.SetConfigFile(expanded)
		if err := vp.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "quest: reading config file %s", expanded)
		}
	}

	if flags != nil {
		var bindErr error
		flags.VisitAll(func(f *pflag.Flag) {
			if err := vp.BindPFlag(f.Name, f); err != nil && bindErr == nil {
				bindErr = errors.Wrapf(err, "quest: binding flag %s", f.Name)
			}
		})
		if bindErr != nil {
			return nil, bindErr
		}
	}

	conf := new(Config)
	if err := vp.Unmarshal(conf); err != nil {
		return nil, errors.Wrap(err, "quest: decoding config")
	}
	if err := mergo.Merge(conf, DefaultConfig()); err != nil {
		return nil, errors.Wrap(err, "quest: applying defaults")
	}
	if err := conf.expandPaths(); err != nil {
		return nil, err
	}
	return conf, nil
}

func (c *Config) expandPaths() error {
	for _, p := range []*string{&c.Map, &c.Journal, &c.Archive, &c.Metrics} {
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return errors.Wrapf(err, "quest: expanding %s", *p)
		}
		*p = expanded
	}
	return nil
}

// LoadLayout reads a map file. The layout may be the whole document or
// live under a "mansion" key, so a config file can be used as a map file.
func LoadLayout(path string) (*tree.Layout, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, errors.Wrapf(err, "quest: expanding %s", path)
	}

	vp := viper.New()
	vp.SetConfigFile(expanded)
	if err := vp.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "quest: reading map file %s", expanded)
	}

	layout := new(tree.Layout)
	if vp.IsSet("mansion") {
		err = vp.UnmarshalKey("mansion", layout)
	} else {
		err = vp.Unmarshal(layout)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "quest: decoding map file %s", expanded)
	}
	return layout, nil
}
