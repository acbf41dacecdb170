package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
)

//revive:disable-next-line:var-naming
const flags_usage = `      --debug              Print debug logs after exiting
      --delimiters file    YAML file with extra language-to-delimiter mappings
      --lang value         Language deciding the comment delimiter ("py").
                           Default is to guess by filename.
      --list-languages     List languages with a known comment delimiter
      --width value        Maximum line width. 0 means the terminal width when
                           stdout is a terminal, otherwise 80. (default 0)
      --trace              Print trace logs after exiting
      --write              Rewrite the input file in place instead of printing
                           to stdout

  -h, --help               Show this help text
      --version            Print the refill version number`

func printUsage(output io.Writer) {
	fmt.Fprintln(output, "Usage:")
	fmt.Fprintln(output, "  refill [options] <file>")
	fmt.Fprintln(output, "  ... | refill")
	fmt.Fprintln(output, "  refill < file")
	fmt.Fprintln(output)
	fmt.Fprintln(output, "Rewraps over-width line comments in source code, moving overflowing words")
	fmt.Fprintln(output, "onto the following comment line. Compressed files will be transparently")
	fmt.Fprintln(output, "decompressed. Everything that is not a line comment is left untouched.")
	fmt.Fprintln(output)
	fmt.Fprintln(output, "More information + source code:")
	fmt.Fprintln(output, "  <https://github.com/walles/refill#readme>")
	fmt.Fprintln(output)
	fmt.Fprintln(output, "Environment:")

	refillEnv := os.Getenv("REFILL")
	if len(refillEnv) == 0 {
		fmt.Fprintln(output, "  Additional options are read from the REFILL environment variable if set.")
		fmt.Fprintln(output, "  But currently, the REFILL environment variable is not set.")
	} else {
		fmt.Fprintln(output, "  Additional options are read from the REFILL environment variable.")
		fmt.Fprintf(output, "  Current setting: REFILL=\"%s\"\n", refillEnv)
	}

	fmt.Fprintln(output)
	fmt.Fprintln(output, "Options:")
	fmt.Fprintln(output, flags_usage)
}

// printProblemsHeader prints bug reporting information to stderr
func printProblemsHeader() {
	fmt.Fprintln(os.Stderr, "Please post the following report at <https://github.com/walles/refill/issues>.")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Commandline: refill", strings.Join(os.Args[1:], " "))
	fmt.Fprintln(os.Stderr, "Version:", versionString)
	fmt.Fprintln(os.Stderr, "LANG   :", os.Getenv("LANG"))
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "GOOS    :", runtime.GOOS)
	fmt.Fprintln(os.Stderr, "GOARCH  :", runtime.GOARCH)
	fmt.Fprintln(os.Stderr, "Compiler:", runtime.Compiler)
	fmt.Fprintln(os.Stderr)
}
