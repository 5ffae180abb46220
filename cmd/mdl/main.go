// seehuhn.de/go/mdl - an animation interpreter for scene descriptions
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command mdl renders a scene program.
//
// Usage:
//
//	mdl [flags] scene.mdl
//
// The frames of the program are written to the frames directory, named
// after the basename of the program. Animations are additionally
// combined into an animated GIF.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"seehuhn.de/go/mdl"
	"seehuhn.de/go/mdl/script"
	"seehuhn.de/go/mdl/viewer"
)

func main() {
	configFile := flag.String("config", "", "read settings from this YAML `file`")
	display := flag.Bool("display", false, "show frames in a window")
	workers := flag.Int("workers", 0, "render `n` frames concurrently")
	framesDir := flag.String("o", "", "write frames to this `directory`")
	quiet := flag.Bool("q", false, "do not report progress")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] scene.mdl\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *configFile, *display, *workers, *framesDir, *quiet); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, "mdl:", err)
		os.Exit(1)
	}
}

func run(scene, configFile string, display bool, workers int, framesDir string, quiet bool) error {
	cfg := mdl.DefaultConfig()
	if configFile != "" {
		f, err := os.Open(configFile)
		if err != nil {
			return err
		}
		cfg, err = mdl.LoadConfig(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", configFile, err)
		}
	}
	if workers > 0 {
		cfg.Workers = workers
	}
	if framesDir != "" {
		cfg.FramesDir = framesDir
	}
	if !quiet {
		cfg.Logger = log.New(os.Stderr, "mdl: ", 0)
	}

	prog, err := script.ParseFile(scene)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if !display {
		_, err := mdl.Render(ctx, prog, cfg)
		return err
	}

	// The window must run on the main goroutine, so rendering moves to
	// the background. Closing the window abandons the remaining frames.
	win := viewer.NewWindow(cfg.Width, cfg.Height)
	cfg.Viewer = win
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	done := make(chan error, 1)
	go func() {
		_, err := mdl.Render(ctx, prog, cfg)
		done <- err
	}()

	if err := win.Run("mdl - " + scene); err != nil {
		cancel()
		<-done
		return err
	}
	cancel()
	err = <-done
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
