// Package accounts is the on-device authentication directory: it registers
// and authenticates users, tracks the signed-in session and keeps both in
// the local key/value store.
//
// A Directory starts in StateLoading and becomes usable after Load. Every
// operation before that fails with ErrNotReady. Load never fails: unreadable
// or corrupt persisted state is logged and replaced by an empty directory.
//
// Persisted keys
//
//	auth.accounts.v1     JSON object, normalized email -> {password, username}
//	auth.currentUser.v1  JSON {email, username, id}; absent when signed out
//	auth.pepper.v1       random bytes keying the password fingerprints
//
// Passwords are kept as argon2id fingerprints keyed by the directory pepper.
// The fingerprint is deterministic within a directory, which is what lets
// sign-up refuse a password that any other account already uses.
package accounts
