package cache

type hitResult[T any] struct {
	data    T
	valid   bool
	claimed bool
}

// Cache stores values that are expensive to create
//
// A missing key is claimed by the first caller, other callers wait for it to be set or deleted.
type Cache[T any] interface {
	getOrClaim(key string) hitResult[T]
	set(key string, data T)
	delete(key string)
	wait()
}
