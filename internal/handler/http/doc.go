// Package http is the HTTP transport of the sync engine.
//
// A catalog node serves the per-user sync endpoints under /sync behind
// bearer token auth. A remote merge store serves POST /sync/remote, guarded
// by the shared API key. Both expose /api/version/.
package http
