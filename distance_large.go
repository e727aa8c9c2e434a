//go:build xbrzlarge

package xbrz

// channelKeyBits is the number of bits of each sign-reduced channel
// difference kept in the lookup key. 8 bits per channel gives a 24-bit key
// (16777216 entries, ~64MiB of float32) — a build-time option for exact-match
// tests, not a production default (see spec.md §9).
const channelKeyBits = 8

const tableSize = 1 << (3 * channelKeyBits)
