// Package lang maps source files to their line comment delimiter. Language
// identification is delegated to chroma's lexer registry so anything chroma
// can name can be configured here.
package lang

import (
	"fmt"
	"os"

	"github.com/alecthomas/chroma/v2/lexers"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

// Line comment delimiters by chroma lexer name. Languages with block comments
// only (CSS, HTML, ...) are intentionally absent, files in those pass through
// untouched.
var lineComments = map[string]string{
	"Go":          "//",
	"C":           "//",
	"C++":         "//",
	"C#":          "//",
	"Java":        "//",
	"JavaScript":  "//",
	"TypeScript":  "//",
	"Rust":        "//",
	"Swift":       "//",
	"Kotlin":      "//",
	"Scala":       "//",
	"Dart":        "//",
	"PHP":         "//",
	"Zig":         "//",
	"Python":      "#",
	"Ruby":        "#",
	"Perl":        "#",
	"Bash":        "#",
	"Makefile":    "#",
	"YAML":        "#",
	"TOML":        "#",
	"R":           "#",
	"Elixir":      "#",
	"Lua":         "--",
	"SQL":         "--",
	"Haskell":     "--",
	"Elm":         "--",
	"Ada":         "--",
	"Erlang":      "%",
	"Common Lisp": ";;",
	"Scheme":      ";;",
	"Clojure":     ";;",
	"EmacsLisp":   ";;",
	"INI":         ";",
	"VimL":        "\"",
	"Fortran":     "!",
}

// ForName returns the line comment delimiter for a language name or alias,
// "py" and "Python" work equally well.
func ForName(name string) (string, bool) {
	lexer := lexers.Get(name)
	if lexer == nil {
		log.Debug("No lexer found for language ", name)
		return "", false
	}

	delimiter, found := lineComments[lexer.Config().Name]
	return delimiter, found
}

// ForFilename guesses the line comment delimiter from a file name,
// "main.go" gives "//".
func ForFilename(filename string) (string, bool) {
	lexer := lexers.Match(filename)
	if lexer == nil {
		log.Debug("No lexer matches file name ", filename)
		return "", false
	}

	delimiter, found := lineComments[lexer.Config().Name]
	if !found {
		log.Debug("No line comment delimiter known for ", lexer.Config().Name)
	}
	return delimiter, found
}

// LoadOverrides merges delimiters from a YAML file into the built-in table.
// The file is a flat mapping from chroma language name to delimiter:
//
//	Go: "//"
//	Brainfuck: "#"
func LoadOverrides(path string) error {
	contents, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	overrides := map[string]string{}
	err = yaml.Unmarshal(contents, &overrides)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	for name, delimiter := range overrides {
		if delimiter == "" {
			return fmt.Errorf("parsing %s: empty delimiter for %s", path, name)
		}
		lineComments[name] = delimiter
	}
	return nil
}

// Known lists the languages we have delimiters for, sorted.
func Known() []string {
	names := make([]string, 0, len(lineComments))
	for name := range lineComments {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
