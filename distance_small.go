//go:build !xbrzlarge

package xbrz

// channelKeyBits is the number of high bits of each sign-reduced channel
// difference kept in the lookup key. 5 bits per channel gives a 15-bit key
// (32768 entries, ~128KiB of float32) — the default, matching the reference
// implementation's small lookup table.
const channelKeyBits = 5

const tableSize = 1 << (3 * channelKeyBits)
