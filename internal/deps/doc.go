// Package deps checks that the external executables a download job delegates
// to are reachable, and produces platform install hints for the ones that are
// not.
package deps
