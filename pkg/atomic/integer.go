package atomic

// The bitwise fetch family is integer-only; these are free functions rather
// than methods so the Integer constraint rejects float instantiations at
// compile time.

// FetchAnd atomically replaces the value with old & v and returns old.
func FetchAnd[T Integer](a *Atomic[T], v T) T {
	return a.fetchUpdate(func(old T) T { return old & v })
}

// FetchOr atomically replaces the value with old | v and returns old.
func FetchOr[T Integer](a *Atomic[T], v T) T {
	return a.fetchUpdate(func(old T) T { return old | v })
}

// FetchXor atomically replaces the value with old ^ v and returns old.
func FetchXor[T Integer](a *Atomic[T], v T) T {
	return a.fetchUpdate(func(old T) T { return old ^ v })
}

// FetchNand atomically replaces the value with ^(old & v) and returns old.
func FetchNand[T Integer](a *Atomic[T], v T) T {
	return a.fetchUpdate(func(old T) T { return ^(old & v) })
}
