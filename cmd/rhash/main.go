// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Command rhash prints polynomial rolling hashes of a file.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/ulikunitz/rhash"
	"github.com/ulikunitz/rhash/xlog"
)

const usageStr = `Usage: rhash [OPTION]... [FILE]
Print polynomial rolling hashes of FILE. Without -r or -w the hash of the
complete content is printed.

  -b, --base=N       polynomial base (default 252097800623)
  -m, --modulo=N     modulo; all hashes are less than it (default 2^61-1)
  -r, --range=L:R    print the hash of bytes [L,R); may be repeated
  -w, --window=N     print the hashes of all windows of N bytes
  -h, --help         give this help
  -v, --verbose      print parameters and progress to standard error

With no FILE, or when FILE is -, read standard input.
`

func usage(w io.Writer) {
	fmt.Fprint(w, usageStr)
}

func main() {
	// setup logger
	cmdName := filepath.Base(os.Args[0])
	log.SetPrefix(fmt.Sprintf("%s: ", cmdName))
	log.SetFlags(0)

	// initialize flags
	pflag.CommandLine = pflag.NewFlagSet(cmdName, pflag.ExitOnError)
	pflag.CommandLine.SetInterspersed(true)
	pflag.Usage = func() { usage(os.Stderr); os.Exit(1) }
	var (
		help    = pflag.BoolP("help", "h", false, "")
		verbose = pflag.BoolP("verbose", "v", false, "")
		cfg     config
	)
	pflag.Uint64VarP(&cfg.Base, "base", "b", rhash.DefaultBase, "")
	pflag.Uint64VarP(&cfg.Modulo, "modulo", "m", rhash.DefaultModulo, "")
	pflag.StringArrayVarP(&cfg.Ranges, "range", "r", nil, "")
	pflag.IntVarP(&cfg.Window, "window", "w", 0, "")
	pflag.Parse()

	if *help {
		usage(os.Stdout)
		os.Exit(0)
	}
	if pflag.NArg() > 1 {
		log.Fatal("only one file supported; for help, type rhash -h")
	}

	var vlog xlog.Logger
	if *verbose {
		vlog = xlog.New(os.Stderr, cmdName+": ")
	}

	in := io.Reader(os.Stdin)
	if name := pflag.Arg(0); name != "" && name != "-" {
		f, err := os.Open(name)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		in = f
	}

	if err := run(os.Stdout, in, cfg, vlog); err != nil {
		log.Fatal(err)
	}
}
