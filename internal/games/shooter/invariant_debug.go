//go:build debug

package shooter

// strictInvariants makes invariant violations panic in debug builds.
const strictInvariants = true
