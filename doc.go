// Package routecheck detects conflicting HTTP route registrations
// across an application's source: identical or semantically
// overlapping method+path combinations, including registrations that
// only collide after resolving chains of mounted sub-router prefixes
// spanning multiple files.
//
// The package never parses program syntax. An extraction layer feeds
// it already-resolved events (router creations, mounts, exports,
// imports and route registrations) and receives conflict
// classifications back. Everything is synchronous and single-writer:
// one Analyzer per run, files processed strictly in order.
package routecheck
