package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/forlang/forc/internal/compfile"
	"github.com/forlang/forc/internal/config"
	"github.com/forlang/forc/internal/names"
	"github.com/forlang/forc/internal/pipeline"
	"github.com/forlang/forc/internal/prettyprinter"
	"github.com/forlang/forc/internal/rewrite"
	"github.com/forlang/forc/internal/tracedb"
)

var (
	showTree   = flag.Bool("tree", false, "print the structural tree instead of combinator source")
	noColor    = flag.Bool("no-color", false, "disable colored output")
	maxClauses = flag.Int("max-clauses", config.DefaultMaxClauses, "maximum clause count per comprehension")
	traceDB    = flag.String("trace-db", "", "record desugaring traces into this sqlite database")
	uuidNames  = flag.Bool("uuid-names", false, "derive synthetic names from UUIDs instead of a counter")
)

const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[31m"
	ansiBold  = "\x1b[1m"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: forc [flags] file.yaml...\n")
		fmt.Fprintf(os.Stderr, "Desugars comprehension description files into combinator calls.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	var store *tracedb.Store
	if *traceDB != "" {
		var err error
		store, err = tracedb.Open(*traceDB)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", errLine(err.Error()))
			os.Exit(1)
		}
		defer store.Close()
	}

	exitCode := 0
	for _, path := range files {
		if !runFile(path, store, len(files) > 1) {
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}

func runFile(path string, store *tracedb.Store, header bool) bool {
	if !config.IsDescriptionFile(path) {
		fmt.Fprintf(os.Stderr, "%s\n", errLine(fmt.Sprintf(
			"%s: not a description file (want %s)", path, strings.Join(config.DescriptionFileExtensions, ", "))))
		return false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errLine(err.Error()))
		return false
	}

	var supply names.Supply = names.NewCounterSupply()
	if *uuidNames {
		supply = names.NewUUIDSupply()
	}

	ctx := &pipeline.PipelineContext{
		FilePath:   path,
		Input:      data,
		MaxClauses: *maxClauses,
	}
	p := pipeline.New(
		&compfile.DecodeProcessor{},
		&rewrite.DesugarProcessor{Options: rewrite.Options{Names: supply, MaxClauses: *maxClauses}},
		&prettyprinter.RenderProcessor{},
	)
	ctx = p.Run(ctx)

	if len(ctx.Errors) > 0 {
		for _, e := range ctx.Errors {
			fmt.Fprintf(os.Stderr, "%s\n", errLine(e.Error()))
		}
		return false
	}

	if header {
		if useColor() {
			fmt.Printf("%s== %s ==%s\n", ansiBold, path, ansiReset)
		} else {
			fmt.Printf("== %s ==\n", path)
		}
	}
	if *showTree {
		fmt.Print(ctx.Tree)
	} else {
		fmt.Println(ctx.Rendered)
	}

	if store != nil {
		digest := tracedb.Digest(ctx.Input)
		if err := store.Record(digest, string(ctx.Input), ctx.Rendered); err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", errLine(err.Error()))
			return false
		}
	}
	return true
}

func errLine(msg string) string {
	if useColor() {
		return ansiRed + msg + ansiReset
	}
	return msg
}

// useColor enables ANSI colors only on a real terminal.
func useColor() bool {
	if *noColor {
		return false
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return false
	}
	return os.Getenv("TERM") != "dumb"
}
