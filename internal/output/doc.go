// Package output handles everything scaffkit prints: the Splog logger, the
// echo of git invocations and tables.
package output
