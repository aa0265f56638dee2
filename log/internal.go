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
	"bytes"
	"fmt"
	"io"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

var brackets = map[Level]string{
	Trace: "[TRACE]",
	Debug: "[DEBUG]",
	Info:  "[INFO] ",
	Warn:  "[WARN] ",
	Error: "[ERROR]",
	Fatal: "[FATAL]",
}

// writer buffers a whole log line so it reaches the output
// in a single Write call.
type writer struct {
	buf bytes.Buffer
	out io.Writer
}

func newWriter(out io.Writer) *writer {
	return &writer{out: out}
}

func (w *writer) WriteByte(c byte) error {
	return w.buf.WriteByte(c)
}

func (w *writer) WriteString(s string) (int, error) {
	return w.buf.WriteString(s)
}

func (w *writer) Flush() (err error) {
	_, err = w.out.Write(w.buf.Bytes())
	w.buf.Reset()
	return err
}

type leveledLogger struct {
	name       string
	caller     bool
	timeFormat string
	level      Level

	// This is a pointer so that it's shared by any derived loggers, since
	// those derived loggers share the same output as well.
	mutex  *sync.Mutex
	writer *writer
}

func (l *leveledLogger) Named(name string) Logger {
	sub := *l
	if sub.name != "" {
		sub.name = sub.name + "." + name
	} else {
		sub.name = name
	}
	sub.writer = newWriter(l.writer.out)
	return &sub
}

func (l *leveledLogger) WithLevel(level Level) Logger {
	sub := *l
	sub.level = level
	sub.writer = newWriter(l.writer.out)
	return &sub
}

func (l *leveledLogger) Level() Level {
	return l.level
}

func (l *leveledLogger) enabled(level Level) bool {
	return l.level != Off && level <= l.level
}

func (l *leveledLogger) log(level Level, msg string) {
	if !l.enabled(level) {
		return
	}
	tm := time.Now()

	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.logPlain(tm, level, msg)
}

func (l *leveledLogger) logf(level Level, format string, args ...interface{}) {
	if !l.enabled(level) {
		return
	}
	tm := time.Now()

	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.logPlain(tm, level, fmt.Sprintf(format, args...))
}

func (l *leveledLogger) logPlain(tm time.Time, level Level, msg string) {

	// time
	l.writer.WriteString(tm.Format(l.timeFormat))

	// level
	l.writer.WriteByte(' ')
	l.writer.WriteString(levelToBracket(level))

	// caller
	if l.caller {
		if _, file, line, ok := runtime.Caller(3); ok {
			l.writer.WriteByte(' ')
			l.writer.WriteString(trimCallerPath(file))
			l.writer.WriteByte(':')
			l.writer.WriteString(strconv.Itoa(line))
			l.writer.WriteByte(':')
		}
	}

	// name
	l.writer.WriteByte(' ')
	if l.name != "" {
		l.writer.WriteString(l.name)
		l.writer.WriteString(": ")
	}

	// msg
	l.writer.WriteString(msg)

	l.writer.WriteString("\n")
	l.writer.Flush()
}

// trimCallerPath cleanups a path by returning only the last 2 segments of the path.
func trimCallerPath(path string) string {
	var idx int
	if idx = strings.LastIndexByte(path, '/'); idx == -1 {
		return path
	}

	if idx = strings.LastIndexByte(path[:idx], '/'); idx == -1 {
		return path
	}

	return path[idx+1:]
}

func levelToBracket(level Level) string {
	s, ok := brackets[level]
	if !ok {
		s = "[?????]"
	}
	return s
}
