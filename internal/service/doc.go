// Package service provides the application-level task operations, wiring
// the authoritative file store together with the optional cache. All cache
// interaction is best-effort: the store is consulted whenever the cache
// cannot answer, and mutations invalidate the cached list.
package service
