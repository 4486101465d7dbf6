// Package analysis characterizes integrated trajectories.
//
//   - [LyapunovExponent]: largest Lyapunov exponent via renormalized separation
//   - [LobeSwitches]: how often a path jumps between attractor lobes
//   - [PoincareSection]: plane crossings of a sampled path
//   - [DominantFrequency]: strongest oscillation in a sampled coordinate
//   - [Summarize]: per-trajectory statistics of an ensemble
//
// # Chaos Detection
//
// A positive largest Lyapunov exponent indicates chaotic dynamics:
//
//	lambda := analysis.LyapunovExponent(dyn, integ, x0, dt, duration, 1e-8)
//	if lambda > 0 {
//	    // System is chaotic
//	}
package analysis
