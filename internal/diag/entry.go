package diag

import (
	"fmt"
	"time"
)

// Level represents the severity of a log entry.
type Level int

const (
	LevelNone Level = iota
	LevelError
	LevelWarning
	LevelInfo
	LevelDebug
)

func (l Level) String() string {
	switch l {
	case LevelNone:
		return "NONE"
	case LevelError:
		return "ERROR"
	case LevelWarning:
		return "WARNING"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	default:
		return "UNKNOWN"
	}
}

// Component identifies which part of the pipeline produced an entry.
type Component string

const (
	ComponentProject    Component = "project"
	ComponentAsset      Component = "asset"
	ComponentScheduler  Component = "scheduler"
	ComponentEncoder    Component = "encoder"
	ComponentPalette    Component = "palette"
	ComponentTransition Component = "transition"
	ComponentCLI        Component = "cli"
)

// Entry is a single log record.
type Entry struct {
	Timestamp time.Time
	Component Component
	Level     Level
	Message   string
	Data      map[string]any
}

// Format renders the entry the way the CLI prints it.
func (e *Entry) Format() string {
	ts := e.Timestamp.Format("15:04:05.000")
	return fmt.Sprintf("[%s] [%s] %s: %s", ts, e.Component, e.Level, e.Message)
}
