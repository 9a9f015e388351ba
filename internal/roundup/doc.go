// Package roundup extracts structured records from Comic Book Roundup pages.
// Every rule is a fixed structural path paired with a text label; the
// pages are parsed as static markup and nothing is cached between calls.
package roundup
