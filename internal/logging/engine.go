// Copyright (c) 2026 Keymaster Team
// kvbrowse - read-only key-value database browser
// This source code is licensed under the MIT license found in the LICENSE file.

package logging

import "fmt"

// EngineLogger adapts L to the logger interfaces of the storage engines.
// Badger wants Errorf/Warningf/Infof/Debugf and pebble Infof/Errorf/Fatalf.
type EngineLogger struct {
	Prefix string
}

func (e EngineLogger) msg(format string, v ...interface{}) string {
	return e.Prefix + fmt.Sprintf(format, v...)
}

func (e EngineLogger) Errorf(format string, v ...interface{}) {
	L.Error(e.msg(format, v...))
}

func (e EngineLogger) Warningf(format string, v ...interface{}) {
	L.Warn(e.msg(format, v...))
}

func (e EngineLogger) Infof(format string, v ...interface{}) {
	L.Debug(e.msg(format, v...))
}

func (e EngineLogger) Debugf(format string, v ...interface{}) {
	L.Debug(e.msg(format, v...))
}

// Fatalf logs at error level and panics; engines only call it on
// unrecoverable internal corruption.
func (e EngineLogger) Fatalf(format string, v ...interface{}) {
	m := e.msg(format, v...)
	L.Error(m)
	panic(m)
}
