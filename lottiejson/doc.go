// Package lottiejson decodes and encodes Lottie (bodymovin) documents as
// generic JSON trees.
//
// Decoding keeps numbers as json.Number so the numeric text of untouched
// values survives a decode/encode round trip. Encoding is deterministic:
// object members are sorted and the output is compact unless MarshalIndent is
// used, which makes exported documents stable for diffs and golden files.
package lottiejson
