// Package cli provides the interactive cofund command-line client.
//
// It wires configuration, the local database, the fingerprint cache, API
// services and a REPL that keeps working offline for login. Typical flow:
// prompt for credentials, start a background connectivity watcher, then
// execute user commands.
//
// Key features:
//   - Register, login (online with offline fallback), logout
//   - Publish content, optionally uploading a media file
//   - Invest, vote on pending requests, resume interrupted settlements
//   - Inspect stakes, portfolio and the settlement chain
//   - Verify the chain locally and compare it with cached fingerprints
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
