// SPDX-FileCopyrightText: © 2022 The lithe authors <https://github.com/golangee/lithe/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

// Command lithe compiles a lithe file, or stdin, into html and writes it to stdout.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/golangee/lithe"
	"github.com/golangee/lithe/dtd"
	"github.com/golangee/lithe/parser"
	"github.com/golangee/lithe/token"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"
)

// version is the semantic version of the command. Release builds set it with
//  go build -ldflags "-X main.version=v1.2.3"
var version = "v0.1.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// versionString formats the injected version. A missing "v" prefix is tolerated, shortened versions like
// v1.2 are completed and build metadata is dropped. Anything else is reported as a development build.
func versionString() string {
	v := version
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}

	if !semver.IsValid(v) {
		return "Lithe CLI (devel)"
	}

	return "Lithe CLI " + strings.TrimPrefix(semver.Canonical(v), "v")
}

// run executes the command and returns the exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := logrus.New()
	logger.SetOutput(stderr)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	flags := flag.NewFlagSet("lithe", flag.ContinueOnError)
	flags.SetOutput(stderr)

	format := flags.String("format", string(dtd.HTML), "preferred doctype dialect, html or xhtml")
	verbose := flags.Bool("v", false, "log debug information to stderr")

	var showVersion bool
	flags.BoolVar(&showVersion, "V", false, "print version information")
	flags.BoolVar(&showVersion, "version", false, "print version information")

	flags.Usage = func() {
		fmt.Fprintf(stdout, "%s\n\nUsage: lithe [flags] [file|-]\n\nReads stdin if no file or - is given.\n\nFlags:\n", versionString())
		flags.SetOutput(stdout)
		flags.PrintDefaults()
		flags.SetOutput(stderr)
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		return 2
	}

	if showVersion {
		fmt.Fprintln(stdout, versionString())
		return 0
	}

	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	dialect, err := dtd.ParseDialect(*format)
	if err != nil {
		logger.WithError(err).Error("invalid -format")
		return 2
	}

	if flags.NArg() > 1 {
		logger.Errorf("expected at most one input file, got %d", flags.NArg())
		return 2
	}

	filename := flags.Arg(0)

	src, err := readInput(filename, stdin)
	if err != nil {
		logger.WithError(err).Error("unable to read input")
		return 1
	}

	if filename == "-" {
		filename = ""
	}

	doc, err := lithe.Parse(src,
		parser.WithDialect(dialect),
		parser.WithFilename(filename),
		parser.WithLogger(logger),
	)
	if err != nil {
		logger.WithError(err).Error("unable to parse input")

		var posErr *token.PosError
		if errors.As(err, &posErr) {
			fmt.Fprint(stderr, posErr.Explain(src))
		}

		return 1
	}

	out, err := lithe.Render(doc)
	if err != nil {
		logger.WithError(err).Error("unable to render document")
		return 1
	}

	if _, err := io.WriteString(stdout, out); err != nil {
		logger.WithError(err).Error("unable to write output")
		return 1
	}

	return 0
}

// readInput reads the named file or stdin if the name is empty or "-".
func readInput(filename string, stdin io.Reader) (string, error) {
	if filename == "" || filename == "-" {
		buf, err := io.ReadAll(stdin)
		if err != nil {
			return "", errors.Wrap(err, "unable to read stdin")
		}

		return string(buf), nil
	}

	buf, err := os.ReadFile(filename)
	if err != nil {
		return "", errors.Wrap(err, "unable to read file")
	}

	return string(buf), nil
}
