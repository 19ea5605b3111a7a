// Package actions provides high-level business logic for CLI commands.
//
// Each action corresponds to a scaffkit command (status, clean, new, etc.)
// and orchestrates operations across the abspath and git packages.
//
// Key patterns:
//   - Actions accept runtime.Context which provides Config, Splog and the Repo
//   - Actions never change the process working directory; paths are resolved
//     against runtime.Context.Cwd
//   - Actions handle user interaction through survey prompts
package actions
