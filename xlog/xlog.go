// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

/*
Package xlog provides optional debug output.

A Logger may be nil. All functions of the package check for a nil logger
and return without formatting anything, so disabled debug output costs a
single comparison. The *log.Logger type of the standard library satisfies the
Logger interface.
*/
package xlog

import (
	"fmt"
	"io"
	"log"
)

// Logger is the interface required for debug output.
type Logger interface {
	Output(calldepth int, s string) error
}

// New returns a logger writing to w using prefix and no flags. If w is nil, a
// nil Logger is returned, which disables output.
func New(w io.Writer, prefix string) Logger {
	if w == nil {
		return nil
	}
	return log.New(w, prefix, 0)
}

// Print formats the arguments like fmt.Sprint and writes them to l.
func Print(l Logger, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprint(v...))
	}
}

// Printf formats the arguments like fmt.Sprintf and writes them to l.
func Printf(l Logger, format string, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintf(format, v...))
	}
}

// Println formats the arguments like fmt.Sprintln and writes them to l.
func Println(l Logger, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintln(v...))
	}
}
