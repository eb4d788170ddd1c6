//go:build lowres

package tick

// TicksPerSecond is the number of ticks in one second.
//
// 25,200 (2^4 * 3^2 * 5^2 * 7) keeps tick counts small for constrained
// targets. It still divides 24, 25, 30, 48, 50, 60, 72, 90, 120 and 144 but
// loses the factors of 11 and 13. Build without the lowres tag for 3,603,600.
const TicksPerSecond int64 = 25200
