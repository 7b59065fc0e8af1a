// Package suite resolves test suite identifiers to fixture directories.
//
// A suite identifier S maps to two fixture directories under the input
// directory:
//
//	<input>/stage_S/valid
//	<input>/stage_S/invalid
//
// Every immediate child of a fixture directory is a fixture. The category of
// the directory fixes the exit code the compiler under test must return for
// each of its fixtures.
package suite
