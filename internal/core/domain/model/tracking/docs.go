// Package tracking provides the append-only position Sample for the live
// delivery location feed.
package tracking
