// Package analyzer reaches the external phonological analyzer that supplies
// candidate stress options for a word. The Python phonology_engine package
// is run as a subprocess; an OpenAI chat model and a YAML fixture table can
// stand in for it. Providers can be wrapped with a circuit breaker, a
// fallback and a persistent SQLite cache.
package analyzer
