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

// Package i18n holds the player facing messages of quest and selects
// a printer for the configured locale.
package i18n

import (
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// DefaultLocale is the locale used when none is configured.
const DefaultLocale = "pt-BR"

// Message keys. Every key is defined for every supported locale.
const (
	Banner          = "quest.banner"
	MapReady        = "quest.map_ready"
	Farewell        = "quest.farewell"
	Location        = "nav.location"
	DeadEnd         = "nav.dead_end"
	Options         = "nav.options"
	OptionLeft      = "nav.option_left"
	OptionRight     = "nav.option_right"
	OptionQuit      = "nav.option_quit"
	Prompt          = "nav.prompt"
	NoPathLeft      = "nav.no_path_left"
	NoPathRight     = "nav.no_path_right"
	Quit            = "nav.quit"
	Invalid         = "nav.invalid"
	InputExhausted  = "nav.input_exhausted"
	ReplayMatched   = "replay.matched"
	ReplayDiverged  = "replay.diverged"
	ReasonDeadEnd   = "reason.dead_end"
	ReasonQuit      = "reason.quit"
	ReasonExhausted = "reason.input_exhausted"
)

var messages = map[language.Tag]map[string]string{
	language.BrazilianPortuguese: {
		Banner:          "=== DETECTIVE QUEST - EXPLORAÇÃO DA MANSÃO ===\nBem-vindo, detetive! Explore a mansão para encontrar pistas.\n",
		MapReady:        "Mapa da mansão criado com sucesso!\nIniciando exploração a partir do %s...\n",
		Farewell:        "\n=== Exploração finalizada ===\nObrigado por jogar Detective Quest!\n",
		Location:        "\n--- Você está no: %s ---\n",
		DeadEnd:         "Este é um cômodo sem saída. Fim da exploração nesta direção.\n",
		Options:         "Opções de exploração:\n",
		OptionLeft:      "  [%c] - Ir para a esquerda (%s)\n",
		OptionRight:     "  [%c] - Ir para a direita (%s)\n",
		OptionQuit:      "  [%c] - Sair da exploração\n",
		Prompt:          "\nEscolha uma opção: ",
		NoPathLeft:      "Não há caminho à esquerda!\n",
		NoPathRight:     "Não há caminho à direita!\n",
		Quit:            "Saindo da exploração...\n",
		Invalid:         "Opção inválida! Use '%c' (esquerda), '%c' (direita) ou '%c' (sair).\n",
		InputExhausted:  "\nFim da entrada. Encerrando a exploração.\n",
		ReplayMatched:   "Reprodução idêntica: %d salas visitadas, término por %s.\n",
		ReplayDiverged:  "Reprodução divergente: %s\n",
		ReasonDeadEnd:   "cômodo sem saída",
		ReasonQuit:      "saída do jogador",
		ReasonExhausted: "fim da entrada",
	},
	language.AmericanEnglish: {
		Banner:          "=== DETECTIVE QUEST - MANSION EXPLORATION ===\nWelcome, detective! Explore the mansion to find clues.\n",
		MapReady:        "Mansion map ready!\nStarting the exploration at %s...\n",
		Farewell:        "\n=== Exploration finished ===\nThanks for playing Detective Quest!\n",
		Location:        "\n--- You are at: %s ---\n",
		DeadEnd:         "This room is a dead end. The exploration ends here.\n",
		Options:         "Where to go:\n",
		OptionLeft:      "  [%c] - Go left (%s)\n",
		OptionRight:     "  [%c] - Go right (%s)\n",
		OptionQuit:      "  [%c] - Quit the exploration\n",
		Prompt:          "\nChoose an option: ",
		NoPathLeft:      "There is no path to the left!\n",
		NoPathRight:     "There is no path to the right!\n",
		Quit:            "Leaving the exploration...\n",
		Invalid:         "Invalid option! Use '%c' (left), '%c' (right) or '%c' (quit).\n",
		InputExhausted:  "\nInput exhausted. Ending the exploration.\n",
		ReplayMatched:   "Replay matched: %d rooms visited, ended by %s.\n",
		ReplayDiverged:  "Replay diverged: %s\n",
		ReasonDeadEnd:   "dead end",
		ReasonQuit:      "player quit",
		ReasonExhausted: "input exhausted",
	},
}

// supported lists the catalog locales, the first one being the fallback
// of the matcher.
var supported = []language.Tag{
	language.BrazilianPortuguese,
	language.AmericanEnglish,
}

var (
	once    sync.Once
	cat     *catalog.Builder
	matcher language.Matcher
	initErr error
)

func load() {
	cat = catalog.NewBuilder()
	for tag, msgs := range messages {
		for key, msg := range msgs {
			if err := cat.SetString(tag, key, msg); err != nil {
				initErr = errors.Wrapf(err, "i18n: loading %s/%s", tag, key)
				return
			}
		}
	}
	matcher = language.NewMatcher(supported)
}

// Supported returns the locales with a message catalog.
func Supported() []string {
	out := make([]string, 0, len(supported))
	for _, tag := range supported {
		out = append(out, tag.String())
	}
	return out
}

// Match returns the supported locale closest to the given one. Unknown
// but well formed locales fall back to DefaultLocale.
func Match(locale string) (language.Tag, error) {
	once.Do(load)
	if initErr != nil {
		return language.Und, initErr
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return language.Und, errors.Wrapf(err, "i18n: invalid locale %q", locale)
	}
	_, idx, _ := matcher.Match(tag)
	return supported[idx], nil
}

// NewPrinter returns a printer for the supported locale closest to the
// given one.
func NewPrinter(locale string) (*message.Printer, error) {
	tag, err := Match(locale)
	if err != nil {
		return nil, err
	}
	return message.NewPrinter(tag, message.Catalog(cat)), nil
}

// MustPrinter is like NewPrinter but panics on an invalid locale. It is
// meant for tests and package defaults.
func MustPrinter(locale string) *message.Printer {
	p, err := NewPrinter(locale)
	if err != nil {
		panic(err)
	}
	return p
}
