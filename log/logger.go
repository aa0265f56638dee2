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

// Package log implements the quest leveled logger. Log lines go to stderr
// by default so they never mix with the text shown to the player.
package log

import (
	"io"
	"os"
	"strings"
	"sync"
)

// Level represents the logging level.
type Level uint32

const (
	// NotSet level is used to indicate that no level has been set
	// and allow for a default to be used.
	NotSet Level = iota

	// Off is intended to avoid tracing any action.
	// This is the hightest possible rank.
	Off

	// Fatal designates errors that abort the application
	// (e.g. a mansion map that cannot be built).
	Fatal

	// Error designates error events that still allow the
	// application to finish (e.g. a journal that cannot be written).
	Error

	// Warn designates potentially harmful situations.
	Warn

	// Info designates coarse-grained progress messages
	// (e.g. session start and end).
	Info

	// Debug designates fine-grained events such as every
	// location entered by the navigator.
	Debug

	// Trace designates even finer-grained events, like every
	// token read from the input.
	Trace
)

// String returns a string representation of the level
func (l Level) String() string {
	switch l {
	case Off:
		return "off"
	case Fatal:
		return "fatal"
	case Error:
		return "error"
	case Warn:
		return "warn"
	case Info:
		return "info"
	case Debug:
		return "debug"
	case Trace:
		return "trace"
	default:
		return "unknown"
	}
}

// LevelFromString returns a Level type for the named log level, or
// "NotSet" if the level passed as argument is invalid.
func LevelFromString(level string) Level {
	level = strings.ToLower(strings.TrimSpace(level))
	switch level {
	case "off", "silent":
		return Off
	case "fatal":
		return Fatal
	case "error":
		return Error
	case "warn":
		return Warn
	case "info":
		return Info
	case "debug":
		return Debug
	case "trace":
		return Trace
	default:
		return NotSet
	}
}

// Logger describes the interface that must be implemented
// by all loggers.
type Logger interface {
	Trace(msg string)
	Tracef(format string, args ...interface{})
	Debug(msg string)
	Debugf(format string, args ...interface{})
	Info(msg string)
	Infof(format string, args ...interface{})
	Warn(msg string)
	Warnf(format string, args ...interface{})
	Error(msg string)
	Errorf(format string, args ...interface{})
	// Fatal emits a message at the FATAL level
	// and exits the application (os.Exit(1)).
	Fatal(msg string)
	Fatalf(format string, args ...interface{})

	// Named creates a logger that will prepend the given name on front
	// of all messages. If the logger has a previously set name, the new
	// value will be the appended to it.
	Named(name string) Logger

	// WithLevel creates a logger with the given level changed.
	WithLevel(level Level) Logger

	// Level returns the threshold of the logger.
	Level() Level
}

// LoggerOptions can be used to configure a new logger.
type LoggerOptions struct {
	// Name of the subsystem to prefix logs with.
	Name string

	// Level is the threshold for the logger. Any log trace less
	// sever is supressed.
	Level Level

	// Output is the writer implementation where to write logs to.
	// If nil, defaults to DefaultOutput.
	Output io.Writer

	// TimeFormat is the time format to use instead of the default one.
	TimeFormat string

	// IncludeLocation includes file and line information in each log line.
	IncludeLocation bool

	// Mutex is an optional mutex pointer in case Output is shared.
	Mutex *sync.Mutex
}

// New returns a new logger configured with
// the given options.
func New(opts *LoggerOptions) Logger {
	if opts == nil {
		opts = &LoggerOptions{}
	}

	output := opts.Output
	if output == nil {
		output = DefaultOutput
	}

	level := opts.Level
	if level == NotSet {
		level = DefaultLevel
	}

	mutex := opts.Mutex
	if mutex == nil {
		mutex = new(sync.Mutex)
	}

	timeFormat := opts.TimeFormat
	if timeFormat == "" {
		timeFormat = DefaultTimeFormat
	}

	return &leveledLogger{
		name:       opts.Name,
		caller:     opts.IncludeLocation,
		timeFormat: timeFormat,
		level:      level,
		mutex:      mutex,
		writer:     newWriter(output),
	}
}

// To allow mocking we require a switchable variable.
var osExit = os.Exit
