// Package dynamo provides core simulation primitives for dynamical systems.
//
// The package defines the fundamental interfaces and types shared by the
// integrators and the ensemble runner:
//
//   - [State]: vector representing system state
//   - [System]: interface for autonomous or time-dependent ODEs (dX/dt = f(X, t))
//   - [Integrator]: fixed-step numerical integrator
//   - [AdaptiveIntegrator]: integrator with embedded error control
//   - [Config]: step size and tolerance settings for a solve
//
// # Errors
//
// Failures are reported with sentinel errors ([ErrInvalidParameter],
// [ErrDivergence], [ErrExport]) wrapped in typed errors that carry the
// offending parameter or trajectory. Match them with [errors.Is] and
// [errors.As].
//
// # Thread Safety
//
// [State] values are plain slices. Integrators may keep scratch buffers and
// must not be shared between goroutines; create one per worker.
package dynamo
