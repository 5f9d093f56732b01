// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ebitenloop runs a vfx.Pipeline under ebiten's game loop.
//
// Ebiten owns the frame cadence and the window, so it plays the role of
// both the frame-scheduling and the resize-notification collaborator:
// each ebiten Update tick steps the pipeline one frame, and Layout
// changes propagate to the pipeline as resizes.
//
// # Usage
//
//	game, err := ebitenloop.NewGame(provider, 800, 600,
//	    ebitenloop.WithDraw(func(screen *ebiten.Image, ctx *vfx.RenderContext) {
//	        // present the frame
//	    }),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	game.Pipeline().AddEffect(myEffect)
//
//	if err := ebiten.RunGame(game); err != nil {
//	    log.Fatal(err)
//	}
//
// The pipeline starts lazily on the first Update tick and stops when
// the game is closed. Layout reports the pipeline's current rendering
// dimensions, so a degradation-triggered resolution halving takes
// effect on the very next frame.
package ebitenloop
