package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"subdesk/internal/health"
)

const (
	ansiRed    = "\033[31m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiReset  = "\033[0m"
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func statusLabel(status health.Status, colorize bool) string {
	label := status.String()
	if !colorize {
		return label
	}
	switch status {
	case health.StatusOK:
		return ansiGreen + label + ansiReset
	case health.StatusReadOnly:
		return ansiYellow + label + ansiReset
	default:
		return ansiRed + label + ansiReset
	}
}

// defaultMarks renders the movie and TV default flags as "movies, tv".
func defaultMarks(movies, tv bool) string {
	var marks []string
	if movies {
		marks = append(marks, "movies")
	}
	if tv {
		marks = append(marks, "tv")
	}
	return strings.Join(marks, ", ")
}

func printUnmatched(cmd *cobra.Command, kind string, keys []string) {
	if len(keys) == 0 {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Unknown %s: %s\n", kind, strings.Join(keys, ", "))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
