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

// Package scenario provides nested, self reporting subtests to write
// feature style tests.
package scenario

import (
	"reflect"
	"strconv"
	"strings"
	"testing"
)

type TestF func(t *testing.T)

type LetF func(t *testing.T, desc string, fns ...TestF)
type ReportF func() string

// New returns a let function that runs each fn as a numbered subtest and
// a report function listing every description with its outcome.
func New() (LetF, ReportF) {
	report := make([]string, 1)
	return func(t *testing.T, desc string, fns ...TestF) {
			t.Helper()
			var ri int
			idx := strings.Count(t.Name(), "/")
			for _, fn := range fns {
				status := t.Run(strconv.Itoa(idx), func(t *testing.T) {
					report = append(report, t.Name()+": "+desc)
					ri = len(report) - 1
					t.Log(desc)
					fn(t)
				})
				if status {
					report[ri] += " -> ok!"
				} else {
					report[ri] += " -> failed!"
				}
			}
		}, func() string {
			return strings.Join(report, "\n")
		}
}

// Steps are let functions prefixed with the Gherkin keywords.
type Steps struct {
	Feature, Scenario, Given, When, Then LetF
}

// Gherkin wraps let into Steps.
func Gherkin(let LetF) Steps {
	prefixed := func(prefix string) LetF {
		return func(t *testing.T, desc string, fns ...TestF) {
			t.Helper()
			let(t, prefix+desc, fns...)
		}
	}
	return Steps{
		Feature:  prefixed("Feature: "),
		Scenario: prefixed("Scenario: "),
		Given:    prefixed("Given: "),
		When:     prefixed("When: "),
		Then:     prefixed("Then: "),
	}
}

func Equal(t *testing.T, exp, got interface{}, msg string) {
	t.Helper()
	if !reflect.DeepEqual(exp, got) {
		t.Fatalf("Expecting '%v' got '%v' %s\n", exp, got, msg)
	}
}

func True(t *testing.T, cond bool, msg string) {
	t.Helper()
	if !cond {
		t.Fatalf("Condition is not true: %s", msg)
	}
}

func False(t *testing.T, cond bool, msg string) {
	t.Helper()
	if cond {
		t.Fatalf("Condition is not false: %s", msg)
	}
}

func NoError(t *testing.T, err error, msg string) {
	t.Helper()
	if err != nil {
		t.Fatalf("Error is not nil: %s: %v", msg, err)
	}
}

// Count fails unless sub appears exactly n times in s.
func Count(t *testing.T, s, sub string, n int, msg string) {
	t.Helper()
	if got := strings.Count(s, sub); got != n {
		t.Fatalf("Expecting %d occurrences of %q got %d: %s", n, sub, got, msg)
	}
}
