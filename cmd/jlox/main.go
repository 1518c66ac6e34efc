package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	lox "github.com/loxlang/jlox"
)

const (
	appName     = "jlox"
	historyFile = ".jlox_history"
	prompt      = "> "
)

var errColor = color.New(color.FgRed)

func main() {
	switch len(os.Args) {
	case 1:
		os.Exit(runPrompt())
	case 2:
		os.Exit(runFile(os.Args[1]))
	default:
		fmt.Fprintf(os.Stderr, "Usage: %s [script]\n", appName)
		os.Exit(64)
	}
}

// -----------------------------------------------------------------------------
// file mode
// -----------------------------------------------------------------------------

func runFile(path string) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, path, err)
		return 1
	}

	r := lox.NewRunner(os.Stdout, os.Stderr)
	r.Run(string(src))

	if r.HadError() {
		return 65
	}
	if r.HadRuntimeError() {
		return 70
	}
	return 0
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

// tintWriter passes every diagnostic through a color before it reaches the
// terminal. The text itself is unchanged, so piped output stays clean.
type tintWriter struct {
	w io.Writer
	c *color.Color
}

func (t tintWriter) Write(p []byte) (int, error) {
	if _, err := t.c.Fprint(t.w, string(p)); err != nil {
		return 0, err
	}
	return len(p), nil
}

func runPrompt() int {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	r := lox.NewRunner(os.Stdout, tintWriter{w: os.Stderr, c: errColor})

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
			return 1
		}

		if line == "" {
			continue
		}
		ln.AppendHistory(line)

		r.Run(line)
		r.ResetError()
	}
}
