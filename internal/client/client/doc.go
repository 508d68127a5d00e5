// Package client talks to the StudyPrep REST API.
//
// # Overview
//
//  1. Client is the transport-agnostic contract: Login, Signup, GetProfile,
//     UpdateProfile and ListColleges.
//  2. HTTPClient implements it over JSON/HTTP. Every response is wrapped in
//     the API envelope {code, success, message, data}.
//  3. AuthTransport is the global request interceptor: it attaches the
//     stored bearer token and a request id, and reports 401/403 responses
//     through a hook so the session can be torn down.
//  4. InitDatabase and RunMigrations open and migrate the local SQLite
//     database that backs the secure store.
//
// # Error Handling
//
// Callers match errors with errors.Is / errors.As:
//
//   - ErrUnauthorized: 401 or 403; the token is no longer accepted.
//   - ErrUnavailable: 5xx, 408, 429, timeouts and connection failures.
//   - ErrBadResponse: the body is not the expected JSON or fails schema checks.
//   - *APIError: any other refusal, carrying the server's message.
package client
