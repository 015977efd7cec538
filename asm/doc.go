// Package asm interprets the four-register assembly used by the monorail,
// safe and clock-signal puzzles.
//
// Instructions
//
//	cpy x y   copy x (register or literal) into register y
//	inc x     increment register x
//	dec x     decrement register x
//	jnz x y   jump y instructions away if x is not zero
//	tgl x     toggle the instruction x away (see below)
//	out x     transmit x
//
// Toggling rewrites one-argument instructions inc→dec and everything else
// →inc; two-argument instructions jnz→cpy and everything else →jnz. A
// target outside the program is ignored. Instructions that toggling made
// invalid (cpy into a literal) are skipped when executed.
//
// The machine recognises add loops ("inc x / dec y / jnz y -2" in either
// order) and executes them in one step. Recognition looks at the live
// program on every pass, so toggled code never takes the shortcut.
//
// Errors
//
//   - ErrSyntax     malformed source line.
//   - ErrStepLimit  WithStepLimit was exceeded.
package asm
