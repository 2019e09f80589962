package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsnap <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  clean      Remove code blocks and tables from a markdown file")
	fmt.Fprintln(w, "  render     Render code blocks and tables to PNG snapshots")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mdsnap help <command>' for details on a specific command.")
}

// printCleanUsage prints usage for the clean command.
func printCleanUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsnap clean [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Remove code blocks and pipe tables from a markdown file and write")
	fmt.Fprintln(w, "the cleaned text to a timestamped file in the output directory.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -i, --input <path>         Markdown file to clean (default input.md)")
	fmt.Fprintln(w, "  -o, --output-dir <path>    Directory for the cleaned file (default output)")
	fmt.Fprintln(w, "      --max-blank-lines <n>  Blank lines kept between content (default 2)")
	fmt.Fprintln(w, "  -c, --config <name>        Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet                Only show errors")
	fmt.Fprintln(w, "  -v, --verbose              Show previews of the removed fragments")
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsnap render [flags] [files...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render every table and code block of the given markdown files as")
	fmt.Fprintln(w, "cropped PNG snapshots, numbered in document order.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -i, --input <path>         Markdown file to render (default input.md)")
	fmt.Fprintln(w, "  -o, --output-dir <path>    Directory for snapshots (default output_images)")
	fmt.Fprintln(w, "      --scale <f>            Device scale factor, 1.0-4.0 (default 3)")
	fmt.Fprintln(w, "  -w, --workers <n>          Parallel renderers for multiple files (0 = auto)")
	fmt.Fprintln(w, "  -t, --timeout <d>          Per-page load timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w, "  -c, --config <name>        Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet                Only show errors")
	fmt.Fprintln(w, "  -v, --verbose              Show per-file timing")
}

// runHelp prints help for a specific command.
func runHelp(args []string, deps *Dependencies) {
	if len(args) == 0 {
		printUsage(deps.Stdout)
		return
	}

	switch args[0] {
	case "clean":
		printCleanUsage(deps.Stdout)
	case "render":
		printRenderUsage(deps.Stdout)
	case "version":
		fmt.Fprintln(deps.Stdout, "Usage: mdsnap version")
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(deps.Stdout, "Usage: mdsnap help [command]")
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(deps.Stderr, "Unknown command: %s\n", args[0])
		printUsage(deps.Stderr)
	}
}
