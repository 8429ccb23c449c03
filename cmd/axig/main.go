// Copyright 2022 The Axig Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Command axig synthesizes circuits from truth tables and writes them
// in binary aiger format.
//
//	axig [-p] [-a] [-v] [-o out.aig] <input>
//
// The input is a truth table in hex notation, the name of a file with
// one binary truth table row per output, or a .filelist file naming one
// problem per line.
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/go-air/axig"
	"github.com/go-air/axig/logic"
	"github.com/go-air/axig/logic/aiger"
	"github.com/go-air/axig/tt"
)

func main() {
	app := cli.NewApp()
	app.Name = "axig"
	app.Usage = "synthesize and-xor-inverter graphs from truth tables"
	app.ArgsUsage = "<hex truth table | truth table file | list.filelist>"
	app.Flags = []cli.Flag{
		cli.BoolFlag{Name: "perm, p", Usage: "try all variable permutations"},
		cli.BoolFlag{Name: "and-only, a", Usage: "use only and gates (no xor gates)"},
		cli.BoolFlag{Name: "verbose, v", Usage: "verbose output"},
		cli.StringFlag{Name: "out, o", Usage: "aiger output path (default <input base name up to its first dot>.aig)"},
		cli.StringFlag{Name: "stats", Usage: "append per-problem statistics to `FILE`"},
	}
	app.Action = run
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.ShowAppHelp(ctx)
	}
	input := ctx.Args().Get(0)
	opts := axig.Options{
		AndOnly: ctx.Bool("and-only"),
		Perm:    ctx.Bool("perm"),
		Verbose: ctx.Bool("verbose"),
	}
	if !strings.HasSuffix(input, ".filelist") {
		return solve(input, opts, ctx.String("out"), ctx.String("stats"))
	}
	f, err := os.Open(input)
	if err != nil {
		return errors.Wrapf(err, "opening %q", input)
	}
	defer f.Close()
	nProbs := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		p := strings.TrimSpace(sc.Text())
		if p == "" {
			continue
		}
		log.Infof("solving problem %q", p)
		if err := solve(p, opts, "", ctx.String("stats")); err != nil {
			log.Errorf("problem %q: %v", p, err)
			continue
		}
		nProbs++
	}
	if err := sc.Err(); err != nil {
		return errors.Wrapf(err, "reading %q", input)
	}
	log.Infof("finished solving %d problems from %q", nProbs, input)
	return nil
}

func readInput(input string) (*tt.Vec, int, error) {
	if !strings.Contains(input, ".") {
		return tt.ParseHex(input)
	}
	f, err := os.Open(input)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "opening %q", input)
	}
	defer f.Close()
	return tt.ReadTables(f)
}

func solve(input string, opts axig.Options, outPath, statsPath string) error {
	start := time.Now()
	outs, nins, err := readInput(input)
	if err != nil {
		return err
	}
	log.Infof("entered %d-input %d-output function from %q", nins, outs.Len(), input)
	c := axig.Synthesize(nins, outs, opts)
	c.Print(os.Stdout, opts.Verbose)
	if failed := c.Verify(); len(failed) != 0 {
		for _, i := range failed {
			log.Errorf("verification failed for output %d", i)
		}
	} else {
		fmt.Println("Verification succeeded.")
	}
	log.Infof("time = %.2f sec", time.Since(start).Seconds())
	if outPath == "" {
		base := filepath.Base(input)
		if i := strings.IndexByte(base, '.'); i >= 0 {
			base = base[:i]
		}
		outPath = base + ".aig"
	}
	if err := writeAiger(outPath, c); err != nil {
		return err
	}
	log.Infof("written graph with %d inputs and %d outputs into aiger file %q",
		c.NumIns(), c.NumOuts(), outPath)
	if statsPath != "" {
		if err := appendStats(statsPath, input, nins, outs.Len(), c.NodeCount()); err != nil {
			return err
		}
	}
	return nil
}

func writeAiger(path string, c *logic.C) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "opening aiger file %q", path)
	}
	if err := aiger.Write(f, c); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing aiger file %q", path)
	}
	return f.Close()
}

func appendStats(path, input string, nins, nouts, cost int) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrapf(err, "opening stats file %q", path)
	}
	fmt.Fprintf(f, "%s %d %d %d\n", input, nins, nouts, cost)
	return f.Close()
}
