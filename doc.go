// Package nest provides a convenient layer over kingpin for CLI apps with
// multi-level subcommands.
//
// kingpin shines at declaring and parsing arguments, but it is unopinionated
// about how to structure and execute logic: with tens of subcommands you still
// end up matching command path strings by hand. nest pairs each subcommand
// definition with its execution logic, so commands can live in separate files
// in an organized way, and threads an application-defined context value down
// the command tree, re-derived at every level from the parsed arguments.
//
// A [Commander] is a runnable group of subcommands; calling [Run] on it starts
// the whole parse-and-dispatch process. A Commander can also be converted into
// a [MultiCommand] with [Commander.IntoCommand] and registered under another
// Commander, nesting to arbitrary depth.
//
// When parsing fails, nest renders the full help for the most specific
// subcommand the input resolved to, alongside the parser's error, so a wrong
// invocation never costs an extra --help round trip.
package nest
