// Copyright (C) 2023 NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package log is the side channel malformed lines and startup/shutdown
// notices are written to (stderr by default). Time/date are left out on
// purpose; a supervising process (systemd or otherwise) is expected to
// stamp them. Prefixes follow the syslog-style priority convention at
// https://www.freedesktop.org/software/systemd/man/sd-daemon.html.
package log

import (
	"fmt"
	"io"
	"os"
)

var (
	DebugWriter io.Writer = os.Stderr
	InfoWriter  io.Writer = os.Stderr
	WarnWriter  io.Writer = os.Stderr
	ErrorWriter io.Writer = os.Stderr
)

var (
	DebugPrefix string = "<7>[DEBUG]"
	InfoPrefix  string = "<6>[INFO]"
	WarnPrefix  string = "<4>[WARNING]"
	ErrPrefix   string = "<3>[ERROR]"
	FatalPrefix string = "<3>[FATAL]"
)

// SetLevel discards writers below lvl ("debug", "info", "warn", "err" or
// "fatal"). "fatal" behaves like "err": ErrorWriter stays open because
// Fatal and Fatalf write through it. Unknown values are reported on the
// warn channel and ignored.
func SetLevel(lvl string) {
	switch lvl {
	case "err", "fatal":
		WarnWriter = io.Discard
		fallthrough
	case "warn":
		InfoWriter = io.Discard
		fallthrough
	case "info":
		DebugWriter = io.Discard
	case "debug", "":
		// nothing to discard
	default:
		Warnf("log: invalid level %q, ignoring", lvl)
	}
}

func Debug(v ...interface{}) {
	if DebugWriter != io.Discard {
		fmt.Fprintln(DebugWriter, append([]interface{}{DebugPrefix}, v...)...)
	}
}

func Info(v ...interface{}) {
	if InfoWriter != io.Discard {
		fmt.Fprintln(InfoWriter, append([]interface{}{InfoPrefix}, v...)...)
	}
}

func Warn(v ...interface{}) {
	if WarnWriter != io.Discard {
		fmt.Fprintln(WarnWriter, append([]interface{}{WarnPrefix}, v...)...)
	}
}

func Error(v ...interface{}) {
	if ErrorWriter != io.Discard {
		fmt.Fprintln(ErrorWriter, append([]interface{}{ErrPrefix}, v...)...)
	}
}

func Fatal(v ...interface{}) {
	if ErrorWriter != io.Discard {
		fmt.Fprintln(ErrorWriter, append([]interface{}{FatalPrefix}, v...)...)
	}
	os.Exit(1)
}

func Debugf(format string, v ...interface{}) {
	if DebugWriter != io.Discard {
		fmt.Fprintf(DebugWriter, DebugPrefix+" "+format+"\n", v...)
	}
}

func Infof(format string, v ...interface{}) {
	if InfoWriter != io.Discard {
		fmt.Fprintf(InfoWriter, InfoPrefix+" "+format+"\n", v...)
	}
}

func Warnf(format string, v ...interface{}) {
	if WarnWriter != io.Discard {
		fmt.Fprintf(WarnWriter, WarnPrefix+" "+format+"\n", v...)
	}
}

func Errorf(format string, v ...interface{}) {
	if ErrorWriter != io.Discard {
		fmt.Fprintf(ErrorWriter, ErrPrefix+" "+format+"\n", v...)
	}
}

func Fatalf(format string, v ...interface{}) {
	if ErrorWriter != io.Discard {
		fmt.Fprintf(ErrorWriter, FatalPrefix+" "+format+"\n", v...)
	}
	os.Exit(1)
}
