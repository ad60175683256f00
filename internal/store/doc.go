// Package store provides the PostgreSQL gateway for the canonical
// market_data table.
//
// Schema (managed outside this repo):
//
//	market_data (
//	    id          uuid primary key default gen_random_uuid(),
//	    series_type text not null,
//	    date        date not null,
//	    average     numeric not null,
//	    high        numeric not null,
//	    low         numeric not null,
//	    raw_data    jsonb,
//	    unique (series_type, date)
//	)
//
// The gateway exposes key-value style access: read by (series_type, date),
// insert, and whole-record value update by id. Values travel as decimal
// strings so the stored representation stays exact.
package store
