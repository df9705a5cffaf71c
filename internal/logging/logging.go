// Copyright (c) 2026 thepacketgeek <thepacketgeek@gmail.com>.
// SPDX-License-Identifier: MIT

// Package logging configures Apex logging for the example tools. Log lines
// go to stderr; stdout belongs to the cached artifacts the tools print.
package logging

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/apex/log"

	"github.com/thepacketgeek/tote/internal/config"
)

// InitLogger sets up Apex with a line handler and a log level from the
// TOTE_LOG env variable, falling back to the log-level config key.
func InitLogger() {
	log.SetHandler(&LineHandler{})
	log.SetLevelFromString(resolveLevel())
}

// resolveLevel picks the log level: TOTE_LOG wins, then the log-level
// config key, then ERROR.
func resolveLevel() string {
	if level := os.Getenv("TOTE_LOG"); level != "" {
		return strings.ToUpper(level)
	}
	level, err := config.GetString("log-level", "ERROR")
	if err != nil || level == "" {
		return "ERROR"
	}
	return strings.ToUpper(level)
}

// LineHandler renders one timestamped line per entry, with fields appended
// as key=value pairs.
type LineHandler struct{}

// HandleLog implements the log.Handler interface
func (h *LineHandler) HandleLog(e *log.Entry) error {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	level := strings.ToUpper(e.Level.String())

	var b strings.Builder
	fmt.Fprintf(&b, "%s %.1s %s", timestamp, level, e.Message)

	for _, name := range e.Fields.Names() {
		fmt.Fprintf(&b, " %s=%v", name, e.Fields.Get(name))
	}

	fmt.Fprintln(os.Stderr, b.String())
	return nil
}
