// Package table contains the Table aggregate. A table is occupied iff at
// least one non-served order exists for it; the status stored here is a cache
// of that derivation, recomputed on every serving transition.
package table
