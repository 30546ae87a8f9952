// Package audit holds the pure reducers that turn fetched collections into
// audit reports. Nothing here performs I/O.
package audit
