// Package persist contains concrete implementations of core.SnapshotStore.
//
// The canonical SnapshotStore interface lives in the core package to keep
// domain contracts central. Implementation packages like this one provide
// storage backends (in-memory here, URL-addressed file systems in the
// afsstore sub-package) that can be swapped without touching calling code.
package persist
