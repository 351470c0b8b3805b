// Package presence probes third-party sites for a username.
//
// For every configured domain the prober requests https://{domain}/{username}
// and treats HTTP 200 as "found". Any other status is "not found", and a
// transport error is recorded with its message. Sites are probed one after
// another and results keep that order when serialized.
package presence
