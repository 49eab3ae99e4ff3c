package domain

// Principal is the authenticated identity attached to a request after token
// verification. It is never persisted.
type Principal struct {
	Username string
}

// Customer is the directory record a principal's username resolves to.
type Customer struct {
	ID       int64
	Username string
}
