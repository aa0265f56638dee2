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

package log

import (
	"io"
	"os"
	"sync"
)

var (
	defLogger Logger
	defLock   sync.Mutex

	// DefaultOutput is used as the default log output.
	DefaultOutput io.Writer = os.Stderr

	// DefaultLevel is used as the default log level.
	DefaultLevel = Error

	// DefaultTimeFormat is used as the default time format.
	DefaultTimeFormat = "2006-01-02T15:04:05.000Z0700"
)

// Default is used to create a default logger.
// Once the logger is created, these options are ignored,
// so set them as soon as the process starts.
func Default() Logger {
	defLock.Lock()
	defer defLock.Unlock()
	if defLogger == nil {
		defLogger = New(&LoggerOptions{
			Level:  DefaultLevel,
			Output: DefaultOutput,
		})
	}
	return defLogger
}

// L is a short alias for Default.
func L() Logger {
	return Default()
}

// SetDefault replaces the default logger and returns the previous one.
func SetDefault(log Logger) Logger {
	defLock.Lock()
	defer defLock.Unlock()
	prev := defLogger
	defLogger = log
	return prev
}

// SetLogger switches the default logger to a new one with the given
// subsystem name and level. Unknown levels fall back to DefaultLevel.
func SetLogger(name, level string) Logger {
	l := New(&LoggerOptions{
		Name:   name,
		Level:  LevelFromString(level),
		Output: DefaultOutput,
	})
	SetDefault(l)
	return l
}

// Below is the public interface for the default logger.

func Tracef(format string, args ...interface{}) { L().Tracef(format, args...) }
func Debugf(format string, args ...interface{}) { L().Debugf(format, args...) }
func Infof(format string, args ...interface{})  { L().Infof(format, args...) }
func Warnf(format string, args ...interface{})  { L().Warnf(format, args...) }
func Errorf(format string, args ...interface{}) { L().Errorf(format, args...) }
func Fatalf(format string, args ...interface{}) { L().Fatalf(format, args...) }
