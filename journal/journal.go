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

// Package journal records quest sessions so they can be replayed.
//
// A journal file is a format version byte followed by a MsgPack encoded
// Record.
package journal

import (
	"bufio"
	"io"
	"os"

	"github.com/hashicorp/go-msgpack/codec"
	"github.com/pkg/errors"

	"github.com/bbva/quest/tree"
)

// Version is the current journal format.
const Version uint8 = 1

// ErrUnknownVersion is returned when decoding a journal written in a
// format this build does not know.
var ErrUnknownVersion = errors.New("journal: unknown format version")

// Markers are the direction characters in use during the session.
type Markers struct {
	Left  string `codec:"left"`
	Right string `codec:"right"`
	Quit  string `codec:"quit"`
}

// Record is everything needed to reproduce a session: the map, the
// markers and the player's input, plus the observed outcome.
type Record struct {
	Version uint8  `codec:"-"`
	Session string `codec:"session"`
	// Recorded is the end of the session, in Unix nanoseconds.
	Recorded int64        `codec:"recorded"`
	Locale   string       `codec:"locale"`
	Markers  Markers      `codec:"markers"`
	Layout   *tree.Layout `codec:"layout"`
	Inputs   []string     `codec:"inputs"`
	Path     []string     `codec:"path"`
	Reason   string       `codec:"reason"`
}

// msgpackHandle is a shared handle for encoding/decoding of records
var msgpackHandle = &codec.MsgpackHandle{}

// Encode writes the version prefix and the MsgPack encoded record.
func Encode(w io.Writer, rec Record) error {
	if _, err := w.Write([]byte{Version}); err != nil {
		return errors.Wrap(err, "journal: writing version")
	}
	return errors.Wrap(codec.NewEncoder(w, msgpackHandle).Encode(&rec), "journal: encoding record")
}

// Decode reads a record written by Encode.
func Decode(r io.Reader) (Record, error) {
	var rec Record

	var prefix [1]byte
	if _, err := io.ReadFull(r, prefix[:]); err != nil {
		return rec, errors.Wrap(err, "journal: reading version")
	}
	if prefix[0] != Version {
		return rec, errors.Wrapf(ErrUnknownVersion, "got %d, want %d", prefix[0], Version)
	}

	if err := codec.NewDecoder(r, msgpackHandle).Decode(&rec); err != nil {
		return Record{}, errors.Wrap(err, "journal: decoding record")
	}
	rec.Version = prefix[0]
	return rec, nil
}

// WriteFile encodes the record into path, truncating it.
func WriteFile(path string, rec Record) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "journal: creating file")
	}

	w := bufio.NewWriter(f)
	if err := Encode(w, rec); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return errors.Wrap(err, "journal: flushing file")
	}
	return errors.Wrap(f.Close(), "journal: closing file")
}

// ReadFile decodes the record stored in path.
func ReadFile(path string) (Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return Record{}, errors.Wrap(err, "journal: opening file")
	}
	defer f.Close()
	return Decode(bufio.NewReader(f))
}
