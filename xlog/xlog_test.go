// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package xlog

import (
	"bytes"
	"testing"
)

func TestNilLogger(t *testing.T) {
	l := New(nil, "")
	if l != nil {
		t.Fatalf("New(nil) returned %v; want nil", l)
	}
	// must not panic
	Print(l, "a")
	Printf(l, "%d", 1)
	Println(l, "b")
}

func TestOutput(t *testing.T) {
	buf := new(bytes.Buffer)
	l := New(buf, "x: ")
	Print(l, "a", 1)
	Printf(l, "n=%d", 2)
	Println(l, "b")
	const want = "x: a1\nx: n=2\nx: b\n"
	if got := buf.String(); got != want {
		t.Errorf("output %q; want %q", got, want)
	}
}
