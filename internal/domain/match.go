package domain

import "context"

// MatchQuery pairs a customer request with a supplier business profile.
type MatchQuery struct {
	RequestTitle        string
	RequestDescription  string
	SupplierCategory    string
	SupplierDescription string
}

// MatchAdvisor is an external scoring collaborator. It is consulted only by
// read-side discovery queries, never inside a transactional mutation; an
// error or negative answer omits an item from a list and nothing more.
type MatchAdvisor interface {
	IsMatch(ctx context.Context, query MatchQuery) (bool, error)
}
