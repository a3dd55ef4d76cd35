// Package retry re-executes fallible operations with exponential backoff.
//
// A Policy is a small immutable value owned by the call site; there is no
// shared default instance. One generic algorithm serves both execution
// modes: pass context.Background() for plain blocking behavior, or a
// cancellable context to make the backoff sleep a cancellation point that
// never blocks sibling goroutines.
//
// Semantics
//   - Success on any attempt returns immediately; no delay follows the
//     final attempt.
//   - A failure admitted by Policy.RetryIf sleeps the current delay, then
//     multiplies it by BackoffMultiplier and tries again, up to MaxRetries
//     total attempts.
//   - A failure rejected by RetryIf propagates immediately.
//   - Once attempts are exhausted the last failure is returned unchanged,
//     keeping its type and diagnostic payload intact.
//
// The default classifier IsTransient retries network failures, timeouts,
// and HTTP 5xx responses. Validation failures are deliberately never
// transient; use Always to opt in to retrying everything.
package retry
