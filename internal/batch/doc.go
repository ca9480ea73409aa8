// Package batch reads word lists for batch accentuation.
package batch
