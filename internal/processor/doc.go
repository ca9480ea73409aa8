// Package processor handles the main word processing logic for kirtis.
// It wires the configured analyzer to the accentuator and runs single
// words, batch files and the demo.
package processor
