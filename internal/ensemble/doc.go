// Package ensemble integrates many trajectories of the Lorenz-qubit system
// on one shared time grid.
//
// A run is fully described by a [ParameterSet] and [Options]:
//
//	ens, err := ensemble.Integrate(ctx, ensemble.DefaultParameterSet(), ensemble.DefaultOptions())
//	if err != nil {
//	    // invalid parameters or cancellation; nothing was computed
//	}
//	for _, tr := range ens.Trajectories {
//	    if tr.Err != nil {
//	        // tr.States[tr.Valid:] repeats the last valid sample
//	    }
//	}
//
// The returned [Ensemble] is immutable. Every trajectory has exactly one
// sample per grid timestamp, and a trajectory that diverges never aborts the
// others.
package ensemble
