// Package cli implements the interactive campusctl shell.
//
// The shell is a plain read-eval-print loop over stdin. App wires the local
// session database, the shared HTTP client and the per-service clients
// together; runREPL dispatches typed commands to App methods. A background
// watcher pings the gateway and flips the online/offline indicator shown in
// the prompt.
package cli
