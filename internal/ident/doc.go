// Package ident generates short, shareable base-36 identifier candidates.
//
// An Allocator produces candidates at a caller-supplied length tier:
//   - Length L draws a uniform random integer from [36^(L-1), 36^L) and
//     renders it in base 36, yielding exactly L characters with no
//     zero-suppression ambiguity.
//   - Candidates are screened against a denylist of disallowed substrings
//     (profanity, slurs, reserved technical words). Comparison is
//     case-insensitive, NFC-normalized, with -, _ and space stripped.
//   - After 50 rejected draws the Allocator falls back to a deterministic
//     construction from the current timestamp plus a random suffix. The
//     fallback bypasses the denylist; Candidate therefore never fails.
//
// Uniqueness is NOT guaranteed here. Candidates are only candidates: the
// storage layer's unique constraints decide collisions, and its retry loop
// widens the length tier when a tier becomes contended.
//
// Randomness and the clock are injectable via options so tests can force
// specific identifiers and collision sequences.
package ident
