// Package run sequences one collection run: fetch every enabled source,
// reconcile each observation against the store, apply the resulting mutation,
// and tally the outcome per series type.
//
// Sources fetch concurrently (bounded); reconciliation is strictly
// sequential, so every (seriesType, date) key sees its lookup-then-write
// operations in order. A run owns no state between invocations; all history
// lives in the store, and an aborted run is simply finished by the next one.
package run
