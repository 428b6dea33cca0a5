package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/crosshq/ndkbuild/internal"
)

// Represents the root command.
//
// The tool has no subcommands: every invocation is a build, mirroring how
// the underlying build tool is driven. Positional arguments after the flags
// are passed through to cargo verbatim.
var RootCmd struct {
	Quiet   bool             `short:"q" help:"Suppress informational output."`
	Verbose bool             `short:"v" help:"Enable verbose output."`
	Debug   bool             `short:"d" help:"Enable debug output."`
	Version kong.VersionFlag `help:"Show version information."`

	Target       []string `short:"t" help:"Target ABI or triple to build for. Repeatable. Overrides manifest defaults." placeholder:"ABI"`
	Platform     int      `short:"p" help:"Android API level to build against." placeholder:"LEVEL"`
	Output       string   `short:"o" help:"Copy built libraries into a jniLibs-style tree at this path." placeholder:"DIR" type:"path"`
	ManifestPath string   `help:"Path to the project's Cargo.toml." default:"Cargo.toml" type:"path"`

	CargoArgs []string `arg:"" optional:"" passthrough:"" help:"Arguments passed through to cargo (e.g. build --release)."`
}

// Parses arguments, configures logging, and runs the build pipeline.
func Execute() error {

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	kong.Parse(&RootCmd,
		kong.Name(internal.Name),
		kong.Description("Builds Rust projects for Android targets via the NDK.\n\nInvokes cargo once per target with the NDK toolchain configured, then assembles the built libraries into a jniLibs directory layout."),
		kong.UsageOnError(),
		kong.Vars{
			"version": internal.VersionString(),
		},
		kong.Exit(exit),
	)

	configureLogger()

	return runBuild(ctx)
}

// Exit hook for kong.
//
// Help and version exit zero; anything else is an argument-parsing failure
// and maps to the documented usage exit code.
func exit(code int) {
	if code != 0 {
		code = ExitUsage
	}
	os.Exit(code)
}

// Configures the global logger based on CLI flags.
//
// Flags override build-time defaults set via linker flags.
func configureLogger() {
	debug := RootCmd.Debug || internal.IsDebug()
	quiet := RootCmd.Quiet || internal.IsQuiet()
	verbose := RootCmd.Verbose || internal.IsVerbose()

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	} else if quiet {
		level = slog.LevelWarn
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: verbose,
	})
	slog.SetDefault(slog.New(handler).WithGroup(internal.Name))
}
