// Package settings defines the persisted subtitle settings model and the
// SQLite store that holds it.
//
// Every list (providers, languages, folders, provider groups) is stored in
// order and saved by replacement: a save deletes the previous rows and writes
// the new list in one transaction. Writes also take a file lock next to the
// database so two processes cannot interleave a reconcile-and-save cycle.
package settings
