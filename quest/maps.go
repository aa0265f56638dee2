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
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"

	"github.com/bbva/quest/tree"
)

// MapReport is the outcome of checking one map file.
type MapReport struct {
	Path  string
	Stats tree.Stats
	Err   error
}

// CheckMaps loads and builds every map file matching the patterns,
// skipping those matching any of the exclude patterns. Patterns may use
// "**" to cross directories. Reports are sorted by path. A pattern that
// matches no file is an error.
func CheckMaps(patterns, exclude []string) ([]MapReport, error) {
	skip := make([]string, 0, len(exclude))
	for _, pattern := range exclude {
		expanded, err := homedir.Expand(pattern)
		if err != nil {
			return nil, errors.Wrapf(err, "quest: expanding %s", pattern)
		}
		skip = append(skip, expanded)
	}

	seen := make(map[string]bool)
	var paths []string

	for _, pattern := range patterns {
		expanded, err := homedir.Expand(pattern)
		if err != nil {
			return nil, errors.Wrapf(err, "quest: expanding %s", pattern)
		}
		matches, err := doublestar.FilepathGlob(expanded, doublestar.WithFilesOnly())
		if err != nil {
			return nil, errors.Wrapf(err, "quest: bad pattern %s", pattern)
		}
		if len(matches) == 0 {
			return nil, errors.Errorf("quest: no map file matches %s", pattern)
		}
		for _, m := range matches {
			if !seen[m] && !excluded(m, skip) {
				seen[m] = true
				paths = append(paths, m)
			}
		}
	}
	sort.Strings(paths)

	reports := make([]MapReport, 0, len(paths))
	for _, path := range paths {
		reports = append(reports, checkMap(path))
	}
	return reports, nil
}

func excluded(path string, exclude []string) bool {
	for _, pattern := range exclude {
		if match, _ := doublestar.PathMatch(pattern, path); match {
			return true
		}
	}
	return false
}

func checkMap(path string) MapReport {
	r := MapReport{Path: path}

	layout, err := LoadLayout(path)
	if err != nil {
		r.Err = err
		return r
	}
	root, err := layout.Build()
	if err != nil {
		r.Err = err
		return r
	}
	defer tree.Destroy(root)

	r.Stats, r.Err = tree.Measure(root)
	return r
}
