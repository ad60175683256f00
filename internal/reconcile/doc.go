// Package reconcile decides, per observation, the minimal store mutation:
// insert for an unseen (seriesType, date) key, update when a stored value was
// revised, nothing when the value is unchanged.
//
// The decision function is pure and per-key independent: reconciling a batch
// in any order produces the same decisions, and rerunning against the
// resulting store state yields only no-ops.
package reconcile
