package pgdb

// Fields is a partial update payload: persisted column -> driver-ready value.
type Fields map[string]interface{}
