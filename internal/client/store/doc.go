// Package store is the client's secure key-value store.
//
// SealedStore keeps each value AES-256-GCM sealed in the local metadata
// table. The cipher key is derived with argon2id from a configured secret
// and a random per-database salt stored under SaltKey. A value is persisted
// as two rows, the ciphertext under its own key and the nonce under
// key+".nonce", always written and removed together in one transaction.
package store
