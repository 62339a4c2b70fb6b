// Package store owns durable persistence of the task list. The backing
// format is a single pretty-printed JSON array on the local filesystem,
// and the store is the only component allowed to touch that file.
package store
