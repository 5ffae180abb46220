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

// Package mdl renders scene programs into images and animations.
//
// A program is replayed once per frame. Each replay starts with an
// identity transform and an empty screen; transform commands modify the
// current coordinate system, drawing commands place lit primitives in it,
// and the finished screen is saved as one frame of the animation.
package mdl

//go:generate go run ./testcases/export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/sync/errgroup"

	"seehuhn.de/go/mdl/anim"
	"seehuhn.de/go/mdl/screen"
	"seehuhn.de/go/mdl/script"
)

var (
	// ErrStackUnderflow is returned when a program pops the last
	// coordinate system off the transform stack.
	ErrStackUnderflow = errors.New("transform stack underflow")

	// ErrResource is returned when a mesh file cannot be read or an
	// output file cannot be written.
	ErrResource = errors.New("resource error")
)

// Result lists the files written by Render.
type Result struct {
	Frames []string

	// Animation is the animated GIF combining all frames. It is empty
	// for single-frame programs and for PDF frames.
	Animation string
}

// Render renders all frames of prog. If cfg is nil, DefaultConfig is
// used.
//
// The program is checked before any output is written. Frames are
// rendered into cfg.FramesDir, using up to cfg.Workers goroutines. If
// ctx is cancelled, no further frames are started; frames already saved
// remain on disk.
func Render(ctx context.Context, prog *script.Program, cfg *Config) (*Result, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.check(); err != nil {
		return nil, err
	}
	if err := anim.Validate(prog.Ops, prog.Symbols); err != nil {
		return nil, err
	}
	base, n := anim.Plan(prog.Ops)
	table, err := anim.Knobs(prog.Ops, n)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.FramesDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrResource, err)
	}

	r := &renderer{
		prog:   prog,
		cfg:    cfg,
		base:   base,
		table:  table,
		meshes: newMeshCache(prog.Dir),
		log:    cfg.Logger,
	}
	if r.log == nil {
		r.log = log.New(io.Discard, "", 0)
	}

	res := &Result{Frames: make([]string, n)}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i := range n {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			name, err := r.renderFrame(i)
			if err != nil {
				return fmt.Errorf("frame %d: %w", i, err)
			}
			res.Frames[i] = name
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if n > 1 && cfg.Format != "pdf" {
		name, err := screen.AssembleAnimation(cfg.FramesDir, base, cfg.Format, cfg.GIFDelay, n)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrResource, err)
		}
		r.log.Printf("wrote animation %s", name)
		res.Animation = name
	}
	return res, nil
}

// renderer holds the state shared by all frames of one run.
type renderer struct {
	prog   *script.Program
	cfg    *Config
	base   string
	table  anim.Table
	meshes *meshCache
	log    *log.Logger
}

// renderFrame replays the program for frame i and saves the result.
func (r *renderer) renderFrame(i int) (string, error) {
	f, err := r.newFrame(i)
	if err != nil {
		return "", err
	}
	for _, op := range r.prog.Ops {
		if err := f.exec(op); err != nil {
			return "", err
		}
	}

	name, err := f.screen.Save(screen.FrameName(r.cfg.FramesDir, r.base, i, r.cfg.Format), r.cfg.Format)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrResource, err)
	}
	r.log.Printf("wrote frame %s", name)
	return name, nil
}

func (r *renderer) newFrame(i int) (*frame, error) {
	lineCap, err := r.cfg.lineCap()
	if err != nil {
		return nil, err
	}
	s := screen.New(r.cfg.Width, r.cfg.Height, r.cfg.Supersample)
	s.LineWidth = r.cfg.LineWidth
	s.LineCap = lineCap
	s.SetBackground(r.cfg.Background.RGBA())

	lights := r.cfg.lighting()
	if src := r.prog.Symbols.Lights(); len(src) > 0 {
		lights.Sources = src
	}

	return &frame{
		renderer: r,
		index:    i,
		stack:    []mgl64.Mat4{mgl64.Ident4()},
		screen:   s,
		lights:   lights,
		reflect:  script.White,
		scope:    newScope(r.table, i, r.prog.Symbols),
	}, nil
}
