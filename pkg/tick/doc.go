// Package tick is a fixed-point representation of media time.
//
// A Tick is a signed 64-bit count of 1/TicksPerSecond second units. The
// resolution is chosen so that one frame at 24, 25, 30, 48, 50, 60, 72, 90,
// 120, 144 and 240 fps (and many other rates) is a whole number of ticks, so
// frame-aligned times can be stored, added and compared without drift.
//
// Conversions come in three families:
//
//	FromSeconds / Seconds        float seconds, truncating on the way in
//	FromFrames / ToFrames        frame index at an integer rate, exact in 128 bits
//	FromTimecode / ToTimecode    HH:MM:SS:FF at a rational FrameRate
//
// Arithmetic between ticks and scalars follows two distinct rounding rules:
// float scaling (Mul, Div, MulFloat, DivFloat, Lerp, FromFloat) rounds half
// away from zero, while frame counts at fractional rates (ToFramesFloat,
// FromFramesFloat) round half to even. Integer paths truncate toward zero and
// wrap on overflow like any int64.
//
// All values are plain comparable values. Nothing in this package allocates
// beyond the stack, blocks, or shares state, so every function is safe for
// concurrent use.
package tick
