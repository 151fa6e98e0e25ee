// Package core centralizes the domain contracts of sessionscope: the Session
// collaborator surface, the object factory and destruction callback types
// consumed by the scoped store, and the SnapshotStore persistence interface.
//
// Keeping the interfaces here prevents implementation packages (scope,
// session, persist) from depending on each other; callers depend on core
// contracts and pick concrete implementations at wiring time.
package core
