// Package store persists timing sessions in SQLite.
//
// A session is a named set of entrants. Save replaces the stored entrants of a
// session with a collection snapshot in one transaction, and Load returns
// detached entrants in identity order for Collection.AddExisting, so a
// reloaded session has the same identities it was saved with.
//
// The schema is embedded and carries a version number. Opening a database
// written with a different version fails with ErrSchemaMismatch; delete the
// database to adopt the new schema.
//
// Lock guards a data directory against concurrent writers from separate
// processes. The store itself assumes one writer.
package store
