// Package client talks to the remote Pietos session service.
//
// The service is consumed as an opaque HTTP endpoint: every operation is a
// single GET with URL-encoded parameters answered by a JSON document
// carrying at least a "status" field. The package exposes:
//
//  1. Client — the interface the rest of the application depends on.
//  2. HTTPClient — the production implementation.
//  3. Sentinel and typed errors distinguishing transport failures,
//     malformed replies, and business rejections (see errors.go).
package client
