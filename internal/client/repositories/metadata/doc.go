// Package metadata is the raw key-value table of the local client database.
// Values are opaque bytes; sealing happens one layer up in the store package.
package metadata
