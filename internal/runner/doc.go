// Package runner invokes the external Playwright test runner.
//
// [Invoker.Invoke] builds the command line from the fixed runner invocation,
// the --grep filter and any passthrough arguments, inherits the parent's
// standard streams, and translates every outcome into a [Result]. Nothing
// escapes this boundary as an error the caller must handle: a child failure
// carries the child's exit code, a spawn failure defaults to code 1.
package runner
