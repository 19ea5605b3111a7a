// Package cli implements the scaffkit command line with cobra.
//
// Every command runs between beforeCommand, which loads configuration and
// builds the runtime.Context, and afterCommand, which releases it. Command
// bodies live in the actions package.
package cli
