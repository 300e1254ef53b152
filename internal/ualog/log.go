// Package ualog provides the leveled logger the address-space core
// uses for the handful of places spec.md calls out as "logged"
// workarounds: a missing dataType defaulted to BaseDataType, a
// synthesized null value, an adopted valueRank, and swallowed
// rollback errors (spec §4.F, §7).
package ualog

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

// Level is a logging severity, ordered so that SetLevel can filter by
// threshold.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

var (
	currentLevel = LevelInfo
	logger       = log.New(os.Stderr, "", 0)
)

// SetLevel sets the minimum level that will be written.
func SetLevel(l Level) { currentLevel = l }

// ParseLevel maps a config string (DEBUG/INFO/WARN/ERROR, any case) to
// a Level, defaulting to LevelInfo for anything unrecognized.
func ParseLevel(s string) Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return LevelDebug
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR":
		return LevelError
	default:
		return LevelInfo
	}
}

// Fields is a bag of structured context attached to a log line.
type Fields map[string]any

// Debug logs low-level detail (e.g. an Edit callback returning a bad
// status) that is rarely worth surfacing in production.
func Debug(message string, fields Fields) { emit(LevelDebug, message, fields) }

// Info logs the same class of event the C source reports via
// UA_LOG_INFO_SESSION: a normalized attribute, a synthesized value, or
// any other silently-corrected input.
func Info(message string, fields Fields) { emit(LevelInfo, message, fields) }

// Warn logs a non-fatal inconsistency, such as a best-effort rollback
// or a delete-reference peer-side miss under the permissive default
// (spec §4.C, §9).
func Warn(message string, fields Fields) { emit(LevelWarn, message, fields) }

// Error logs an operation failure that the caller also receives as a
// status code; logging it here gives an operator a trail without
// requiring the caller to log the same status again.
func Error(message string, fields Fields) { emit(LevelError, message, fields) }

func emit(level Level, message string, fields Fields) {
	if level < currentLevel {
		return
	}
	line := fmt.Sprintf("%s [%s] %s", time.Now().Format("2006-01-02T15:04:05.000Z07:00"), level, message)
	if len(fields) > 0 {
		line += fmt.Sprintf(" %v", fields)
	}
	logger.Println(line)
}
