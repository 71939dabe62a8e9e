// Package repositories implements SQLite persistence for the licensing entities.
//
// All SQL in the application lives here. Repositories translate records to and from rows and do no validation.
//
// Key Implementations:
//   - [Store] : the injectable store handle; hands out repositories and runs work in one transaction via [Store.Atomic]
//   - [ContentRepository] : content items
//   - [DistributorRepository] : distributors
//   - [LicenseRepository] : license cross-references, including lookups by content or distributor
//
// Every repository call opens a scoped transaction, runs a single statement, commits, and releases the
// connection on every exit path. A repository obtained from a Store inside Atomic joins that transaction instead.
//
// Not-found is reported as a nil record from GetByID, or false from Update and Delete.
package repositories
