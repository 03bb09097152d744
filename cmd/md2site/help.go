package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2site <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Convert manifest documents to HTML pages")
	fmt.Fprintln(w, "  init       Scaffold a starter config, template, and stylesheet")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Running md2site without a command performs a build.")
	fmt.Fprintln(w, "Run 'md2site help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2site build [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert the documents named by the site config to HTML pages.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>     Config file name or path (default: md2site.yaml)")
	fmt.Fprintln(w, "  -t, --template <path>   Page template file path")
	fmt.Fprintln(w, "  -s, --style <s>         CSS style name or file path")
	fmt.Fprintln(w, "      --no-style          Disable CSS styling")
	fmt.Fprintln(w, "  -q, --quiet             Only show errors")
	fmt.Fprintln(w, "  -v, --verbose           Show timing and summary")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MD2SITE_CONFIG     Config file name or path")
	fmt.Fprintln(w, "  MD2SITE_TEMPLATE   Page template file path")
	fmt.Fprintln(w, "  MD2SITE_STYLE      CSS style name or path")
}

// printInitUsage prints usage for the init command.
func printInitUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2site init [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write a starter md2site.yaml, page template, and stylesheet.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -d, --dir <path>   Directory to scaffold into (default: .)")
	fmt.Fprintln(w, "      --force        Overwrite existing files")
}
