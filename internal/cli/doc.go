// Parses flags and drives the build pipeline.
//
// The tool accepts the following flags:
//
//	-q, --quiet           Suppress informational output.
//	-v, --verbose         Enable verbose output.
//	-d, --debug           Enable debug output.
//	-t, --target          Target ABI or triple. Repeatable.
//	-p, --platform        Android API level.
//	-o, --output          jniLibs-style destination directory.
//	    --manifest-path   Path to Cargo.toml.
//
// Remaining positional arguments are passed through to cargo verbatim.
// Flags override build-time defaults set via linker flags. After parsing,
// the global logger is reconfigured to reflect the final level before the
// pipeline runs.
package cli
