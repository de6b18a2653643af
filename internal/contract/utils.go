package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/logbook/schema"
)

// unknownColor highlights Unknown buckets so data-quality gaps stand out in
// table output.
var unknownColor = color.New(color.FgYellow, color.Bold)

// ColorUnknown returns the value, highlighted when it is one of the Unknown
// sentinels and colors are enabled.
func ColorUnknown(value string, useColors bool) string {
	if useColors && (value == schema.Unknown || value == schema.UnknownBuilding) {
		return unknownColor.Sprint(value)
	}
	return value
}

// buildingNamePattern matches characters that are unsafe in file and folder
// names across platforms.
var buildingNamePattern = regexp.MustCompile(`[<>:"/\\|?*]`)

// SanitizeBuildingName turns a building label into a form that is safe to
// use in file and folder paths. Empty input maps to the Unknown Building
// sentinel so a report folder always has a name.
func SanitizeBuildingName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		trimmed = schema.UnknownBuilding
	}
	return buildingNamePattern.ReplaceAllString(trimmed, "_")
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. An empty path means stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// EnsureOutputFolder creates the folder (and parents) if it does not exist.
func EnsureOutputFolder(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output folder %q: %w", dir, err)
	}
	return nil
}

// GetHistoryDBFilePath returns the path to the SQLite DB file for run
// history storage.
func GetHistoryDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".logbook_history.db"
	}
	return filepath.Join(homeDir, ".logbook_history.db")
}

// TruncateCell truncates a table cell to a maximum width with ellipsis suffix.
// Requires maxWidth > 3 so there is room for the ellipsis plus content.
func TruncateCell(value string, maxWidth int) string {
	runes := []rune(value)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return value
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr. A nil err logs the message alone.
func LogWarn(msg string, err error) {
	if err == nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warn %s\n", msg)
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}
