// Package cli provides the small command-line framework behind 101-linux. It features a tree of
// named commands and groups, a permissive invocation parser and a dispatcher that threads a chain
// of execution states through every resolution step.
//
// Commands are registered once at startup with [Command.Register], then [Dispatch] walks the tree
// for a single argument vector and returns a [Result] holding the process exit code. Flags set at
// any level of the chain are visible to descendants through [GetParam], and the verbose flag
// follows the protocol implemented by [SetVerbose] and [VerboseActive].
package cli
