/*
 * Copyright (C) 2023 by Jason Figge
 */

// Package terminal runs the game on a character terminal through tcell.
//
// The game works in window pixels; Screen scales every rectangle onto the
// cell grid, so the picture keeps its proportions whatever the terminal size.
// Terminals report key presses but not releases. Screen treats a key as held
// while the terminal keeps auto-repeating it and reports the release once
// repeats stop arriving.
package terminal
