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

package journal

import (
	"bytes"
	"sort"
	"time"

	b "github.com/coreos/bbolt"
	"github.com/pkg/errors"
)

var (
	// ErrSessionNotFound is returned when the archive has no record for
	// the asked session.
	ErrSessionNotFound = errors.New("journal: session not found")

	// ErrNoSession is returned when archiving a record without session.
	ErrNoSession = errors.New("journal: record without session")
)

var sessionsBucket = []byte("sessions")

// Archive keeps many session records in a single bolt file, keyed by
// session.
type Archive struct {
	db *b.DB
}

// OpenArchive opens or creates the archive at path. Only one process can
// hold it open at a time.
func OpenArchive(path string) (*Archive, error) {
	db, err := b.Open(path, 0600, &b.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "journal: opening archive %s", path)
	}

	err = db.Update(func(tx *b.Tx) error {
		_, err := tx.CreateBucketIfNotExists(sessionsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "journal: creating bucket")
	}

	return &Archive{db: db}, nil
}

// Put stores the record, replacing any other with the same session.
func (a *Archive) Put(rec Record) error {
	if rec.Session == "" {
		return ErrNoSession
	}

	var buf bytes.Buffer
	if err := Encode(&buf, rec); err != nil {
		return err
	}
	return a.db.Update(func(tx *b.Tx) error {
		return tx.Bucket(sessionsBucket).Put([]byte(rec.Session), buf.Bytes())
	})
}

// Get returns the record of the given session.
func (a *Archive) Get(session string) (Record, error) {
	var rec Record
	err := a.db.View(func(tx *b.Tx) error {
		v := tx.Bucket(sessionsBucket).Get([]byte(session))
		if v == nil {
			return errors.Wrapf(ErrSessionNotFound, "session %s", session)
		}
		var err error
		rec, err = Decode(bytes.NewReader(v))
		return err
	})
	return rec, err
}

// List returns every record, oldest first.
func (a *Archive) List() ([]Record, error) {
	var recs []Record
	err := a.db.View(func(tx *b.Tx) error {
		return tx.Bucket(sessionsBucket).ForEach(func(k, v []byte) error {
			rec, err := Decode(bytes.NewReader(v))
			if err != nil {
				return errors.Wrapf(err, "session %s", k)
			}
			recs = append(recs, rec)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(recs, func(i, j int) bool {
		if recs[i].Recorded != recs[j].Recorded {
			return recs[i].Recorded < recs[j].Recorded
		}
		return recs[i].Session < recs[j].Session
	})
	return recs, nil
}

// Len returns the number of archived sessions.
func (a *Archive) Len() (int, error) {
	var n int
	err := a.db.View(func(tx *b.Tx) error {
		n = tx.Bucket(sessionsBucket).Stats().KeyN
		return nil
	})
	return n, err
}

func (a *Archive) Close() error {
	return a.db.Close()
}
