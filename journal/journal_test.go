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
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/pborman/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/bbva/quest/tree"
)

func sampleRecord() Record {
	return Record{
		Session:  uuid.New(),
		Recorded: 1549016430000000000,
		Locale:   "en-US",
		Markers:  Markers{Left: "e", Right: "d", Quit: "s"},
		Layout:   tree.DefaultLayout(),
		Inputs:   []string{"x", "e", "d"},
		Path:     []string{"Hall de Entrada", "Sala de Estar", "Cozinha"},
		Reason:   "input_exhausted",
	}
}

func TestEncodeDecode(t *testing.T) {
	var buf bytes.Buffer
	rec := sampleRecord()
	require.NoError(t, Encode(&buf, rec))
	require.Equal(t, Version, buf.Bytes()[0], "the first byte is the format version")

	got, err := Decode(&buf)
	require.NoError(t, err)

	rec.Version = Version
	require.Equal(t, rec, got)

	root, err := got.Layout.Build()
	require.NoError(t, err)
	require.Equal(t, 10, tree.Destroy(root))
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(bytes.NewReader(nil))
	require.Error(t, err)

	_, err = Decode(bytes.NewReader([]byte{Version + 1, 0x80}))
	require.Equal(t, ErrUnknownVersion, errors.Cause(err))

	_, err = Decode(bytes.NewReader([]byte{Version, 0x87}))
	require.Error(t, err, "a map header without entries is truncated")
}

func TestFiles(t *testing.T) {
	dir, err := ioutil.TempDir("", "journal")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "session.qj")
	rec := sampleRecord()
	require.NoError(t, WriteFile(path, rec))

	got, err := ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, rec.Session, got.Session)
	require.NotNil(t, uuid.Parse(got.Session))
	require.Equal(t, rec.Path, got.Path)
	require.Equal(t, rec.Inputs, got.Inputs)
	require.Equal(t, rec.Layout, got.Layout)

	_, err = ReadFile(filepath.Join(dir, "missing.qj"))
	require.Error(t, err)

	require.Error(t, WriteFile(filepath.Join(dir, "missing", "session.qj"), rec))
}
