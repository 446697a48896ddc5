// Package testsupport provides shared helpers for package tests: temp-dir
// backed configs, queue store setup, and file fixtures.
package testsupport
