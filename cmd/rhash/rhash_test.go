// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/ulikunitz/rhash"
	"github.com/ulikunitz/rhash/xlog"
)

func defaultConfig() config {
	return config{Base: rhash.DefaultBase, Modulo: rhash.DefaultModulo}
}

func TestRunSum(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, strings.NewReader("hello, world"), defaultConfig(), nil)
	if err != nil {
		t.Fatalf("run error %s", err)
	}
	const want = "1597093752876736051\n"
	if got := out.String(); got != want {
		t.Errorf("output %q; want %q", got, want)
	}
}

func TestRunRanges(t *testing.T) {
	cfg := config{Base: 1000000007, Modulo: 1000000009,
		Ranges: []string{"0:3", "3:6", "2:2"}}
	var out bytes.Buffer
	if err := run(&out, strings.NewReader("abcabc"), cfg, nil); err != nil {
		t.Fatalf("run error %s", err)
	}
	const want = "0:3 294\n3:6 294\n2:2 0\n"
	if got := out.String(); got != want {
		t.Errorf("output %q; want %q", got, want)
	}
}

func TestRunRangeErrors(t *testing.T) {
	tests := [...]struct {
		rng string
		err error
	}{
		{"4:1", rhash.ErrInvertedRange},
		{"0:7", rhash.ErrOutOfBounds},
	}
	for _, c := range tests {
		cfg := defaultConfig()
		cfg.Ranges = []string{"0:1", c.rng}
		var out bytes.Buffer
		err := run(&out, strings.NewReader("abcabc"), cfg, nil)
		if !errors.Is(err, c.err) {
			t.Errorf("range %s: error %v; want %v", c.rng, err, c.err)
		}
		if !strings.HasPrefix(out.String(), "0:1 ") {
			t.Errorf("range %s: output %q; want first range",
				c.rng, out.String())
		}
	}
}

func TestRunWindow(t *testing.T) {
	data := "abcabc"
	cfg := defaultConfig()
	cfg.Window = 3
	var out bytes.Buffer
	if err := run(&out, strings.NewReader(data), cfg, nil); err != nil {
		t.Fatalf("run error %s", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines; want %d", len(lines), 4)
	}
	a := strings.Fields(lines[0])
	b := strings.Fields(lines[3])
	if a[1] != b[1] {
		t.Errorf("window 0 hash %s; window 3 hash %s; want equal",
			a[1], b[1])
	}
}

func TestRunVerbose(t *testing.T) {
	var out, log bytes.Buffer
	vlog := xlog.New(&log, "")
	if err := run(&out, strings.NewReader("ab"), defaultConfig(),
		vlog); err != nil {
		t.Fatalf("run error %s", err)
	}
	if !strings.Contains(log.String(), "hashed 2 bytes") {
		t.Errorf("verbose output %q doesn't report hashed bytes",
			log.String())
	}
	if !strings.Contains(log.String(), "Modulo") {
		t.Errorf("verbose output %q doesn't contain parameters",
			log.String())
	}
}

func TestConfigVerify(t *testing.T) {
	tests := [...]struct {
		cfg config
		ok  bool
	}{
		{defaultConfig(), true},
		{config{Base: 2, Modulo: 0}, false},
		{config{Base: 2, Modulo: 7, Window: -1}, false},
		{config{Base: 2, Modulo: 7, Window: 2,
			Ranges: []string{"0:1"}}, false},
	}
	for _, c := range tests {
		err := c.cfg.Verify()
		if (err == nil) != c.ok {
			t.Errorf("%+v: Verify() error %v", c.cfg, err)
		}
	}
}

func TestParseRange(t *testing.T) {
	tests := [...]struct {
		s  string
		sp span
		ok bool
	}{
		{"0:3", span{0, 3}, true},
		{"5:2", span{5, 2}, true},
		{"12", span{}, false},
		{"a:2", span{}, false},
		{"1:", span{}, false},
	}
	for _, c := range tests {
		sp, err := parseRange(c.s)
		if (err == nil) != c.ok {
			t.Errorf("parseRange(%q) error %v", c.s, err)
			continue
		}
		if sp != c.sp {
			t.Errorf("parseRange(%q) = %+v; want %+v", c.s, sp, c.sp)
		}
	}
}
