// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/kr/pretty"

	"github.com/ulikunitz/rhash"
	"github.com/ulikunitz/rhash/xlog"
)

// config contains the parameters given on the command line.
type config struct {
	Base   uint64
	Modulo uint64
	// ranges in the form L:R
	Ranges []string
	Window int
}

// Verify checks the parameters.
func (cfg *config) Verify() error {
	if cfg.Modulo == 0 {
		return errors.New("modulo must be positive")
	}
	if cfg.Window < 0 {
		return errors.New("window length must not be negative")
	}
	if cfg.Window > 0 && len(cfg.Ranges) > 0 {
		return errors.New("options --range and --window exclude each other")
	}
	return nil
}

type span struct {
	l, r int
}

// parseRange parses a range in the form L:R.
func parseRange(s string) (sp span, err error) {
	ls, rs, ok := strings.Cut(s, ":")
	if !ok {
		return span{}, fmt.Errorf("range %q: missing colon", s)
	}
	if sp.l, err = strconv.Atoi(ls); err != nil {
		return span{}, fmt.Errorf("range %q: %w", s, err)
	}
	if sp.r, err = strconv.Atoi(rs); err != nil {
		return span{}, fmt.Errorf("range %q: %w", s, err)
	}
	return sp, nil
}

// run reads the complete input from r and writes the requested hashes to w.
func run(w io.Writer, r io.Reader, cfg config, vlog xlog.Logger) error {
	if err := cfg.Verify(); err != nil {
		return err
	}
	spans := make([]span, 0, len(cfg.Ranges))
	for _, s := range cfg.Ranges {
		sp, err := parseRange(s)
		if err != nil {
			return err
		}
		spans = append(spans, sp)
	}
	xlog.Print(vlog, pretty.Sprintf("%# v", cfg))

	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	start := time.Now()
	rh := rhash.NewRollingHashConst(data, cfg.Base, cfg.Modulo)
	xlog.Printf(vlog, "hashed %d bytes in %s", rh.Len(), time.Since(start))

	bw := bufio.NewWriter(w)
	switch {
	case cfg.Window > 0:
		hashes := rhash.ComputeHashes(rh.Roller(cfg.Window), data)
		xlog.Printf(vlog, "%d windows of length %d", len(hashes),
			cfg.Window)
		for i, h := range hashes {
			fmt.Fprintf(bw, "%d %d\n", i, h)
		}
	case len(spans) > 0:
		for _, sp := range spans {
			h, err := rh.Hash(sp.l, sp.r)
			if err != nil {
				bw.Flush()
				return err
			}
			fmt.Fprintf(bw, "%d:%d %d\n", sp.l, sp.r, h)
		}
	default:
		fmt.Fprintf(bw, "%d\n", rh.Sum())
	}
	return bw.Flush()
}
