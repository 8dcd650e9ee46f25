// Package main is the entry point for the wordpart tool.
//
// By default it reads text from a file or stdin and prints each line
// with a marker at every word-part stop. With -demo it opens an
// interactive terminal editor driven by word-part motions.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dshills/wordpart/internal/app"
	"github.com/dshills/wordpart/internal/engine/buffer"
	"github.com/dshills/wordpart/internal/engine/part"
	"github.com/dshills/wordpart/internal/fixture"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var demo bool
	var showVersion bool

	flag.BoolVar(&demo, "demo", false, "Open an interactive editor instead of annotating")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "wordpart - word-part boundary annotator\n\n")
		fmt.Fprintf(os.Stderr, "Usage: wordpart [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  wordpart main.go            Annotate stops in a file\n")
		fmt.Fprintf(os.Stderr, "  echo fooBar | wordpart      Annotate stops from stdin\n")
		fmt.Fprintf(os.Stderr, "  wordpart -demo main.go      Edit a file interactively\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("wordpart %s (%s)\n", version, commit)
		return 0
	}

	text, err := readInput(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if demo {
		return runDemo(text)
	}

	out, err := annotate(text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Println(out)
	return 0
}

// readInput reads the named file, or stdin when no file is given.
func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return strings.TrimSuffix(string(data), "\n"), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}

// annotate renders the text with a marker at every word-part stop.
func annotate(text string) (string, error) {
	doc := buffer.NewDocument(text)
	return fixture.Render(text, part.New().Stops(doc))
}

func runDemo(text string) int {
	a, err := app.New(text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	if err := a.Run(); err != nil {
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
