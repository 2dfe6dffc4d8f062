// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"runtime"

	"github.com/dustin/go-humanize"
	"github.com/kballard/go-shellquote"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/pitchlab/matchup/matchup"
	"github.com/pitchlab/matchup/render"
)

// present outputs the SVG figure for r. If out is "-", or out is ""
// and stdout is not a terminal, the figure goes to stdout. If out is
// another path, the figure is written there. Otherwise it is written
// to a temporary file and opened with the view command.
func present(progress *log.Logger, r *matchup.Report, out, view string) error {
	svg := func(w io.Writer) error { return render.SVG(w, r) }
	switch {
	case out == "-" || (out == "" && !isTerminal()):
		return svg(os.Stdout)
	case out != "":
		return writeFile(progress, out, svg)
	}

	f, err := os.CreateTemp("", "matchup-*.svg")
	if err != nil {
		return err
	}
	path := f.Name()
	f.Close()
	if err := writeFile(progress, path, svg); err != nil {
		return err
	}
	cmd, err := viewCommand(view, path)
	if err != nil {
		return err
	}
	cmd.Stdout, cmd.Stderr = os.Stderr, os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("viewing %s: %w", path, err)
	}
	return nil
}

func isTerminal() bool {
	return os.Getenv("TERM") != "dumb" && terminal.IsTerminal(int(os.Stdout.Fd()))
}

// viewCommand returns the command that opens path using view, a
// shell-quoted command line.
func viewCommand(view, path string) (*exec.Cmd, error) {
	args, err := shellquote.Split(view)
	if err != nil {
		return nil, fmt.Errorf("bad -view command: %w", err)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("no viewer; use -o to write the figure to a file")
	}
	return exec.Command(args[0], append(args[1:], path)...), nil
}

func defaultViewer() string {
	switch runtime.GOOS {
	case "darwin":
		return "open"
	case "windows":
		return `cmd /c start ""`
	}
	return "xdg-open"
}

// writeFile creates path and writes it with write.
func writeFile(progress *log.Logger, path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	if fi, err := os.Stat(path); err == nil {
		progress.Printf("wrote %s (%s)", path, humanize.Bytes(uint64(fi.Size())))
	}
	return nil
}
