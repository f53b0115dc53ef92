// Package transport is the single HTTP entry point of the wepub client.
//
// A Client is configured once with the API base address, a default timeout
// and the credential store. For every call it:
//
//  1. reads the credential store and, when a token is present, sends it as
//     "Authorization: Bearer <token>" (the store is read on each call, so a
//     login or logout takes effect on the next request);
//  2. decodes a 2xx JSON payload into the caller's value, hiding status codes
//     and headers;
//  3. turns any other outcome into an *Error classified as ErrUnauthorized,
//     ErrValidation or ErrTransport.
//
// On 401 the Client clears the credential store and notifies subscribers
// registered with OnUnauthorized before returning the error, so the rest of
// the application is already unauthenticated when the caller sees it.
// Nothing is retried.
package transport
