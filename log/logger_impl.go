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

func (l *leveledLogger) Trace(msg string) {
	l.log(Trace, msg)
}

func (l *leveledLogger) Tracef(format string, args ...interface{}) {
	l.logf(Trace, format, args...)
}

func (l *leveledLogger) Debug(msg string) {
	l.log(Debug, msg)
}

func (l *leveledLogger) Debugf(format string, args ...interface{}) {
	l.logf(Debug, format, args...)
}

func (l *leveledLogger) Info(msg string) {
	l.log(Info, msg)
}

func (l *leveledLogger) Infof(format string, args ...interface{}) {
	l.logf(Info, format, args...)
}

func (l *leveledLogger) Warn(msg string) {
	l.log(Warn, msg)
}

func (l *leveledLogger) Warnf(format string, args ...interface{}) {
	l.logf(Warn, format, args...)
}

func (l *leveledLogger) Error(msg string) {
	l.log(Error, msg)
}

func (l *leveledLogger) Errorf(format string, args ...interface{}) {
	l.logf(Error, format, args...)
}

// Fatal always exits, even on a silent logger.
func (l *leveledLogger) Fatal(msg string) {
	l.log(Fatal, msg)
	osExit(1)
}

func (l *leveledLogger) Fatalf(format string, args ...interface{}) {
	l.logf(Fatal, format, args...)
	osExit(1)
}
