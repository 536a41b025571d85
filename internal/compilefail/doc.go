// Package compilefail holds programs that must not compile.
//
// Every other file in this package is guarded by its own build tag and
// demonstrates one dimension mismatch. compilefail_test.go builds each tag
// and asserts that the compiler rejects it.
package compilefail
