// Package httpclient wraps net/http with the browser-like header set used for
// every outbound request: the Instagram profile page, the presence probes and
// the profile image download.
//
// The header set and timeouts come from config.HTTPConfig and are fixed when
// the Client is constructed. Callers pass the timeout for each request
// explicitly, which keeps the 30 s profile/image budget separate from the 10 s
// probe budget without mutating shared state.
//
// Errors are *errors.Error values: ErrorTypeNetwork for transport failures,
// ErrorTypeHTTPStatus from GetOK for non-2xx responses and ErrorTypeParsing
// when a compressed body cannot be decoded.
package httpclient
