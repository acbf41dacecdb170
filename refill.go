package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/walles/refill/internal"
	"github.com/walles/refill/internal/lang"
	"github.com/walles/refill/internal/textbuf"
)

var versionString = "Should be set when building, please use build.sh to build"

func main() {
	defer func() {
		err := recover()
		if err == nil {
			return
		}

		printProblemsHeader()
		panic(err)
	}()

	flagSet := flag.NewFlagSet("", flag.ExitOnError)
	flagSet.Usage = func() {
		printUsage(os.Stdout)
	}
	printVersion := flagSet.Bool("version", false, "Prints the refill version number")
	debug := flagSet.Bool("debug", false, "Print debug logs after exiting")
	trace := flagSet.Bool("trace", false, "Print trace logs after exiting")
	width := flagSet.Int("width", 0,
		"Maximum line width. 0 means the terminal width when stdout is a terminal, otherwise 80.")
	language := flagSet.String("lang", "",
		"Language deciding the comment delimiter (\"py\"). Default is to guess by filename.")
	delimitersFile := flagSet.String("delimiters", "", "YAML file with extra language-to-delimiter mappings")
	listLanguages := flagSet.Bool("list-languages", false, "List languages with a known comment delimiter")
	write := flagSet.Bool("write", false, "Rewrite the input file in place instead of printing to stdout")

	// Combine flags from environment and from command line
	flags := os.Args[1:]
	refillEnv := strings.Trim(os.Getenv("REFILL"), " ")
	if len(refillEnv) > 0 {
		flags = append(strings.Split(refillEnv, " "), flags...)
	}

	err := flagSet.Parse(flags)
	if err != nil {
		printProblemsHeader()
		fmt.Fprintln(os.Stderr, "ERROR: Command line parsing failed:", err.Error())
		fmt.Fprintln(os.Stderr)
		printUsage(os.Stderr)
		os.Exit(1)
	}

	if *printVersion {
		fmt.Println(versionString)
		os.Exit(0)
	}

	log.SetLevel(log.InfoLevel)
	if *trace {
		log.SetLevel(log.TraceLevel)
	} else if *debug {
		log.SetLevel(log.DebugLevel)
	}
	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: time.RFC3339Nano,
	})

	// Collected logs go to stderr after the reflowed text is out, otherwise
	// they would mix into the stdout stream.
	logWriter := internal.LogWriter{}
	log.SetOutput(&logWriter)
	defer func() {
		if !logWriter.Empty() {
			fmt.Fprintf(os.Stderr, "%s", logWriter.String())
		}
	}()

	if *listLanguages {
		for _, name := range lang.Known() {
			fmt.Println(name)
		}
		return
	}

	if *delimitersFile != "" {
		err := lang.LoadOverrides(*delimitersFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "ERROR:", err)
			os.Exit(1)
		}
	}

	if len(flagSet.Args()) > 1 {
		fmt.Fprintln(os.Stderr, "ERROR: Expected exactly one filename, or data piped from stdin, got:", flagSet.Args())
		fmt.Fprintln(os.Stderr)
		printUsage(os.Stderr)
		os.Exit(1)
	}

	var inputFilename *string
	if len(flagSet.Args()) == 1 {
		word := flagSet.Arg(0)
		inputFilename = &word
	}

	stdinIsRedirected := !term.IsTerminal(int(os.Stdin.Fd()))
	if inputFilename == nil && !stdinIsRedirected {
		fmt.Fprintln(os.Stderr, "ERROR: Filename or input pipe required")
		fmt.Fprintln(os.Stderr)
		printUsage(os.Stderr)
		os.Exit(1)
	}

	if *width == 0 {
		*width = internal.DefaultWidth
		if term.IsTerminal(int(os.Stdout.Fd())) {
			terminalWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
			if err == nil {
				*width = terminalWidth
			} else {
				log.Debug("Failed to get terminal width: ", err)
			}
		}
	}
	if *width <= 0 {
		fmt.Fprintln(os.Stderr, "ERROR: Width must be positive, got:", *width)
		os.Exit(1)
	}

	var input io.Reader = os.Stdin
	plainName := ""
	compressed := false
	if inputFilename != nil {
		reader, name, wasCompressed, err := internal.ZOpen(*inputFilename)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			os.Exit(1)
		}
		defer reader.Close()

		input = reader
		plainName = name
		compressed = wasCompressed
	}

	delimiter := ""
	if *language != "" {
		found := false
		delimiter, found = lang.ForName(*language)
		if !found {
			fmt.Fprintf(os.Stderr,
				"ERROR: No line comment delimiter known for language \"%s\", try --list-languages\n",
				*language)
			os.Exit(1)
		}
	} else if plainName != "" {
		delimiter, _ = lang.ForFilename(plainName)
	}

	contents, err := io.ReadAll(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to read input: %v\n", err)
		os.Exit(1)
	}

	buffer := textbuf.New(string(contents))
	wrappedCount := 0
	if delimiter == "" {
		// No idea what comments look like here, pass the text through
		log.Warn("No line comment delimiter known for this input, passing it through unchanged")
	} else {
		filler := internal.Filler{Width: *width, Delimiter: delimiter}
		wrappedCount = filler.WrapAll(buffer)
		log.Debug("Rewrapped ", wrappedCount, " lines at width ", *width)
	}

	if *write {
		if inputFilename == nil {
			fmt.Fprintln(os.Stderr, "ERROR: --write requires a filename, not piped input")
			os.Exit(1)
		}
		if compressed {
			fmt.Fprintln(os.Stderr, "ERROR: --write cannot rewrite compressed files")
			os.Exit(1)
		}
		if wrappedCount == 0 {
			// Nothing changed, don't touch the file
			return
		}

		err := writeInPlace(*inputFilename, buffer.String())
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Failed to rewrite %s: %v\n", *inputFilename, err)
			os.Exit(1)
		}
		return
	}

	_, err = io.WriteString(os.Stdout, buffer.String())
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to write to stdout: %v\n", err)
		os.Exit(1)
	}
}

// writeInPlace replaces filename's contents through a temp file in the same
// directory, the swap is a rename so readers never see a half-written file.
func writeInPlace(filename string, contents string) error {
	dir := filepath.Dir(filename)
	tempFile, err := os.CreateTemp(dir, filepath.Base(filename)+".refill-*")
	if err != nil {
		return err
	}

	_, err = tempFile.WriteString(contents)
	if closeErr := tempFile.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(tempFile.Name())
		return err
	}

	if info, statErr := os.Stat(filename); statErr == nil {
		// Keep the original permissions
		_ = os.Chmod(tempFile.Name(), info.Mode())
	}

	return os.Rename(tempFile.Name(), filename)
}
