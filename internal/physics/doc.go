// Package physics provides the vector fields integrated by the simulator.
//
// [LorenzQubit] implements [dynamo.System] for the Lorenz equations with a
// coupling parameter g on the nonlinear terms:
//
//	dx/dt = sigma * (y - x)
//	dy/dt = rho*x - y - g*x*z
//	dz/dt = g*x*y - beta*z
//
// Models also implement [dynamo.Configurable] so analysis output can
// report their coefficients.
package physics
