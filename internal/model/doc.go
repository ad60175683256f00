// Package model defines shared data types used across the collector.
//
// Conventions:
//   - Dates: time.Time at UTC midnight, day granularity; monthly series are
//     keyed to the first day of the month
//   - Values: decimal.Decimal (sources publish fixed-precision figures)
//   - IDs: string tags for series types, uuid.UUID for stored records
package model
