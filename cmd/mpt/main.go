// Command mpt reads a PTA from a text file and prints either its most
// probable tree (default) or its best single parse (-b).
//
// Usage:
//
//	mpt [flags] automaton.txt
//
// Flags:
//
//	-b        search for the best single run instead of the MPT
//	-v        increase verbosity (repeatable: -v, -vv, -vvv)
//	-tol f    override the tie-drain tolerance (default 1e-12)
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/katalvlaran/mpt/bestparse"
	"github.com/katalvlaran/mpt/inside"
	"github.com/katalvlaran/mpt/mpt"
	"github.com/katalvlaran/mpt/ptafile"
	"github.com/katalvlaran/mpt/result"
)

const (
	exitOK = iota
	exitUsage
	exitParse
	exitNoAccepting
)

// verbosity counts how many times -v was given, making -v -v -v
// equivalent to -vvv.
type verbosity int

func (v *verbosity) String() string   { return fmt.Sprintf("%d", int(*v)) }
func (v *verbosity) Set(string) error { *v++; return nil }
func (v *verbosity) IsBoolFlag() bool { return true }

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("mpt", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: mpt [flags] automaton.txt\n")
		fs.PrintDefaults()
	}

	bestParse := fs.Bool("b", false, "search for the best single run instead of the MPT")
	tolerance := fs.Float64("tol", inside.Tolerance, "tie-drain tolerance")
	var verbose verbosity
	fs.Var(&verbose, "v", "increase verbosity (repeatable)")

	// The flag package reads "-vv" as a flag named "vv", so the combined
	// forms are expanded into repeated -v flags first.
	expanded := make([]string, 0, len(args))
	for _, a := range args {
		if a == "-vv" || a == "-vvv" {
			for i := 1; i < len(a); i++ {
				expanded = append(expanded, "-v")
			}
			continue
		}
		expanded = append(expanded, a)
	}

	if err := fs.Parse(expanded); err != nil {
		return exitUsage
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return exitUsage
	}

	logger := log.New(os.Stderr, "mpt: ", 0)

	f, err := os.Open(fs.Arg(0))
	if err != nil {
		logger.Printf("open %s: %v", fs.Arg(0), err)
		return exitUsage
	}
	defer f.Close()

	p, err := ptafile.Parse(f)
	if err != nil {
		logger.Printf("parse %s: %v", fs.Arg(0), err)
		return exitParse
	}
	if int(verbose) >= 1 {
		logger.Printf("parsed %d states, %d roots", len(p.States()), len(p.Roots()))
	}

	bounds := inside.Solve(p)
	if int(verbose) >= 2 {
		for _, q := range p.States() {
			logger.Printf("R[%s]=%g B[%s]=%g", q, bounds.RunValue(q), q, bounds.TreeBound(q))
		}
	}

	var res result.Result
	if *bestParse {
		res, err = bestparse.Search(p, bounds)
	} else {
		res, err = mpt.Search(p, bounds, mpt.WithTolerance(*tolerance))
	}
	if err != nil {
		logger.Printf("search: %v", err)
		return exitNoAccepting
	}

	if int(verbose) >= 3 {
		logger.Printf("frontier insertions: %d, elapsed: %s", res.Insertions, res.Elapsed)
	}
	fmt.Println(res.String())

	return exitOK
}
