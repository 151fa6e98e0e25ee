// Package testutil contains shared fakes for package tests. Nothing here is
// part of the public API.
package testutil
