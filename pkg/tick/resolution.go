//go:build !lowres

package tick

// TicksPerSecond is the number of ticks in one second.
//
// 3,603,600 (2^4 * 3^2 * 5^2 * 7 * 11 * 13) is the least common multiple of
// 1 through 16 and 25, so every integer rate in 1..16 divides it, as do 24,
// 25, 30, 48, 50, 60, 72, 90, 100, 120, 144 and 240. Build with the lowres tag
// to use 25,200 instead.
const TicksPerSecond int64 = 3603600
