// Package testsupport holds helpers shared by package tests: temp-dir
// configurations and executable stubs standing in for external tools.
package testsupport
