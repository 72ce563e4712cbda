//go:build !debug

package shooter

// strictInvariants is false in release builds: violations are logged and clamped.
const strictInvariants = false
