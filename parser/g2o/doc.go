// Package g2o reads and writes the 2-D subset of the g2o text format.
//
//	VERTEX_SE2 <id> <x> <y> <θ>
//	EDGE_SE2 <from> <to> <dx> <dy> <dθ> <I00> <I01> <I02> <I11> <I12> <I22>
//	FIX <id> [<id> ...]
//
// The tokenizer is a two-state line machine: vertex lines, then edge lines.
// A vertex after the first edge is an error. FIX lines are accepted in
// either state and dropped; anchoring must come from explicit prior edges.
// Blank lines and lines starting with '#' are skipped.
//
// The information matrix is given as its upper triangle and mirrored into
// the full row-major matrix of the Model.
package g2o
