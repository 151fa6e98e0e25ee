// Package logging provides a tiny abstraction over slog so downstream code
// can depend on a minimal interface (Logger) while allowing host frameworks
// to plug in any structured logger. Stores default to the NoOpLogger, keeping
// logging an opt-in concern for library consumers.
package logging
