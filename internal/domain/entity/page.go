package entity

// Page is one slice of a remote collection as returned by a single API call.
// Item order is the server's and is not stable across concurrently fetched pages.
type Page[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"totalCount"`
}
