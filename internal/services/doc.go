// Package services holds the validation and orchestration rules for the licensing entities.
//
// Callers (the CLI) talk to services only; services talk to repositories and never contain SQL.
//
// # Capability Contract
//
// [ContentService], [DistributorService] and [LicenseService] all implement [EntityService] (Get, List,
// Update, Delete). Each adds an entity-specific Add taking a parameter struct ([NewContent],
// [NewDistributor], [NewLicense]).
//
// # Normalization
//
// Optional strings are trimmed and empty values become absent (nil) before anything is stored.
// License start and end dates are opaque and kept exactly as given.
//
// # Referential Integrity
//
// [LicenseService] checks that the referenced content and distributor exist before creating or updating a
// license. The checks and the write run in one transaction through [repositories.Store.Atomic], so nothing
// is persisted when a reference is missing.
//
// # Error Handling
//
//   - [models.ValidationError] : bad caller input; matches [shared.ErrInvalidInput]. Raised before any write.
//   - not found : a nil record from Get, false from Update and Delete; never an error
//   - storage failures : returned wrapped, untranslated
package services
