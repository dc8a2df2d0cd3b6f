// Package fambot provides an HTTP client for the fambot pairing service API.
//
// # Overview
//
// This package is the single gateway between the Duet client and the remote
// service that owns pairing, relationship stats, and wishlist data. It
// handles HTTP communication, JSON serialization, envelope normalization,
// and type-safe representation of every command's request and response.
//
// # Command Model
//
// Each user-initiated command maps to exactly one POST round trip:
//
//   - /api/init: full pairing snapshot (pair, partner, both wishlists)
//   - /api/wishlist/add: create a wish entry, server assigns the id
//   - /api/wishlist/delete: remove one of the caller's entries
//   - /api/wishlist/set_link: attach a link to an entry
//   - /api/wishlist/toggle_done: flip an entry's done flag
//   - /api/wishlist/clear: remove every entry in the caller's list
//   - /api/startdate/set: set the start date, returns fresh stats
//   - /api/cloud/set: set or clear the shared cloud link
//   - /api/pair/delete: dissolve the pairing
//
// Every request body carries the caller identity under "user". The client
// never retries; retry policy, if ever wanted, belongs to the caller.
//
// # Response Envelope
//
// Responses are normalized to {ok: bool, error: string, ...payload}. One
// deliberate compatibility rule: when the body has no "ok" field at all and
// the HTTP status is a success, the command counts as successful. Older
// service builds omit the field on success, and the client reproduces that
// tolerance explicitly rather than through untyped falsiness.
//
// # Error Taxonomy
//
// Failures are reported as *CommandError with one of three kinds:
//
//   - ErrTransport: no usable response (network failure, timeout, or a
//     body that failed to decode into the expected shape)
//   - ErrApplication: the service said no, with its error code, or the
//     HTTP_<status> fallback when the body carried none
//   - ErrLocal: rejected before any round trip (empty title, empty date,
//     empty link), so obviously-invalid input never costs a network call
//
// Decode failures on a success status fail closed as ErrTransport; the
// client never propagates undefined fields into the rest of the program.
//
// # Testing Considerations
//
// The Service interface mirrors *Client and is the seam for test doubles.
// Tests in this repository drive *Client against httptest servers to cover
// envelope normalization, error codes, and the missing-ok tolerance.
package fambot
