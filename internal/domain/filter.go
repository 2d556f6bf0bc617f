package domain

// Filter is a single filter dimension: either unconstrained or an exact
// value. The zero value is unconstrained, which replaces the dashboard's
// old "alle" string sentinel.
type Filter[T comparable] struct {
	set   bool
	value T
}

// Any returns the unconstrained filter for a dimension.
func Any[T comparable]() Filter[T] {
	return Filter[T]{}
}

// Eq returns a filter constraining the dimension to exactly v.
func Eq[T comparable](v T) Filter[T] {
	return Filter[T]{set: true, value: v}
}

func (f Filter[T]) Constrained() bool {
	return f.set
}

// Match reports whether v satisfies the filter. An unconstrained filter
// matches everything.
func (f Filter[T]) Match(v T) bool {
	return !f.set || f.value == v
}

// TransactionFilter is the set of client-side filter dimensions of the order
// list. Dimensions combine conjunctively.
type TransactionFilter struct {
	Email   Filter[EmailStatus]
	Status  Filter[OrderStatus]
	Site    Filter[string]
	Film    Filter[string]
	Version Filter[string]
}

// Match reports whether the transaction passes every constrained dimension.
func (f TransactionFilter) Match(t *Transaction) bool {
	return f.Email.Match(t.EmailStatus()) &&
		f.Status.Match(t.Status) &&
		f.Site.Match(t.Site) &&
		f.Film.Match(t.Film) &&
		f.Version.Match(t.Version)
}
