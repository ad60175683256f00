// Package source adapts each external provider's payload into canonical
// observations.
//
// Each source pairs a transport client with a pure mapping function. The
// mapping functions never perform I/O; they translate one decoded payload into
// zero or more model.Observation values, dropping blank or sentinel entries
// and deduplicating repeated periods. A structurally invalid payload fails the
// whole source for that run as a ShapeError; a single bad data point never
// does.
package source
