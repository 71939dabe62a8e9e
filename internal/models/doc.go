// Package models defines the entity records and the persistence contract for the media rights licensing service.
//
// Records are plain values:
//   - [Content] : a film, series or other licensable media item
//   - [Distributor] : a party that can hold a license (streamer, broadcaster, reseller)
//   - [LicenseXref] : the cross-reference granting one distributor rights to one content item
//
// An ID of 0 marks a record that has not been persisted yet. Optional fields are pointers and nil means absent.
//
// Every record can be converted to and from a generic field map ([Content.ToMap], [ContentFromMap], ...)
// and checks its own struct-tag rules with Validate, which reports the first broken rule as a [ValidationError].
//
// The [Repository] interface defines the CRUD operations every entity store implements.
package models
