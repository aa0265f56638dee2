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
	"os"
	"path/filepath"
)

const (
	errMissingDirectory = "missing parent directory"
	errNotDirectory     = "parent is not a directory"
	errIsDirectory      = "path is a directory"
)

// pathParse function checks that given output paths can be created:
// the parent directory exists and the path itself is not a directory.
// Empty paths are skipped.
func pathParse(paths ...string) error {
	for _, path := range paths {
		if path == "" {
			continue
		}

		parent, err := os.Stat(filepath.Dir(path))
		if err != nil {
			return fmt.Errorf("%s in %s", errMissingDirectory, path)
		}
		if !parent.IsDir() {
			return fmt.Errorf("%s in %s", errNotDirectory, path)
		}

		if info, err := os.Stat(path); err == nil && info.IsDir() {
			return fmt.Errorf("%s in %s", errIsDirectory, path)
		}
	}
	return nil
}
