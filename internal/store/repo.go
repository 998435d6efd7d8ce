package store

import "time"

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	Purpose string    // filter by purpose ("" = all)
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
}
