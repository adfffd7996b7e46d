// Package solve is the single entry point external collaborators call: it
// wires adjacency, the formula builder, the encoder, a chosen SAT back-end,
// and the decoder into one Solve call per instance, matching the control
// flow described for the engine as a whole.
//
// Each Solve call owns its own satsolver.Adapter end-to-end — allocated,
// used, and released before Solve returns — so two concurrent Solve calls
// never share solver state.
package solve
