// Package scope implements the per-session scoped object store. A Store
// lazily creates named objects through caller-supplied factories, tracks
// destruction callbacks, and tears everything down exactly once on Destroy.
//
// The store owns no lock of its own: every operation funnels through the
// session's exclusion lock, running inline when the calling flow already
// holds it. Two operations on stores bound to the same session are therefore
// mutually exclusive, while stores bound to different sessions proceed
// independently.
//
// Snapshot/Restore provide lossy persistence: entries whose values cannot be
// gob-encoded are dropped from the snapshot with a logged warning instead of
// failing the whole operation.
package scope
