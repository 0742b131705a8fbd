// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package rhash

import (
	"io"

	"github.com/ulikunitz/rhash/xlog"
)

// debug stores a reference to a logger. It may contain nil for no output.
var debug xlog.Logger

// debugOn writes debug information to w. If w is nil no output will be
// written.
func debugOn(w io.Writer) { debug = xlog.New(w, "rhash: ") }

// debugOff switches the debugging output off.
func debugOff() { debug = nil }
