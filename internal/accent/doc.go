// Package accent renders Lithuanian words with their pitch-accent
// diacritic. It selects the stress option for a grammatical case from the
// candidates produced by an external phonological analyzer and inserts the
// matching mark at the stressed code point.
//
// All tables are read-only, so every function in this package is safe for
// concurrent use.
package accent
