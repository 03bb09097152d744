package main

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for CLI operations.
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrNoManifest     = errors.New("config has no document sets")
	ErrReadCSS        = errors.New("failed to read CSS file")
)

// defaultConfigName is looked up in the standard config locations when
// no --config flag or MD2SITE_CONFIG variable is given.
const defaultConfigName = "md2site"

// run dispatches to the requested command. Invoked without a command,
// it performs a default build.
func run(args []string, env *Environment) error {
	if len(args) < 2 {
		return runBuild(context.Background(), &buildFlags{}, env)
	}

	switch args[1] {
	case "build":
		flags, _, err := parseBuildFlags(args[2:])
		if err != nil {
			return err
		}
		return runBuild(context.Background(), flags, env)
	case "init":
		flags, err := parseInitFlags(args[2:])
		if err != nil {
			return err
		}
		return runInit(flags, env)
	case "version":
		fmt.Fprintf(env.Stdout, "md2site %s\n", Version)
		return nil
	case "help", "--help", "-h":
		runHelp(args[2:], env)
		return nil
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[1])
	}
}

// runHelp prints usage for a command, or general usage.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}
	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "init":
		printInitUsage(env.Stdout)
	default:
		printUsage(env.Stdout)
	}
}
