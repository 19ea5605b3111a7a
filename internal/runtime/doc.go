// Package runtime provides the execution context for scaffkit commands.
//
// It encapsulates shared dependencies needed by commands, such as the
// loaded configuration, the logger, the working directory and the git
// repository handle.
package runtime
