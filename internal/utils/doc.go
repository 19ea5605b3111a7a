// Package utils provides shared utility functions.
//
// These utilities are used across multiple packages and include:
//   - Command-line argument normalisation
//   - Terminal and stdin detection
//   - Common data structure operations
package utils
