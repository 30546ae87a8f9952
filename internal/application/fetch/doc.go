// Package fetch retrieves complete collections from the paginated API and fans
// out dependent per-entity lookups.
//
// The two operations fail differently. All is all-or-nothing: one failed page
// fails the whole collection. PerParent isolates failures: every parent gets an
// Outcome and a failed lookup never stops the others.
//
// Every call owns its worker pool and joins it before returning.
package fetch
