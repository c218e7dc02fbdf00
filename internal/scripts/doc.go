// Package scripts implements the content-addressed script storage core.
//
// A script is a composite of two independently deduplicated JSON payloads:
// metadata (name, author, ...) and roles. Each payload is stored once per
// distinct SHA-256 hash under a short base-36 id, and the pair of ids is
// registered as a link. Identical payloads always resolve to the same id,
// no matter who stores them or how often.
//
// The four operations:
//   - StorePayload: dedup-or-insert one payload, returning its id
//   - FetchPayload: payload by id
//   - RegisterLink: idempotent pair registration
//   - FetchLinkedPair: both payloads, only if the pair was registered
//
// # Critical Patterns
//
// Insert-and-handle-conflict: StorePayload never pre-checks a candidate id.
// It inserts and interprets the lost conflict - duplicate hash means a
// concurrent writer stored the same payload first (their id wins), anything
// else means the candidate id is taken (retry). The budget is 10 attempts;
// exhaustion surfaces as AllocationExhaustedError.
//
// Length growth: 3 consecutive id collisions within one StorePayload call
// durably widen the category's length tier by one character and reset the
// collision count. Growth is permanent; tiers never shrink.
package scripts
