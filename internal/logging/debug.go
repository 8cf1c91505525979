// Package logging provides debug output gated by the TS_DEBUG environment
// variable. Debug messages go through the standard logger so they interleave
// correctly with the operational warnings the rest of the program emits.
package logging

import (
	"log"
	"os"
)

// DebugEnabled reports whether TS_DEBUG is set to a non-empty value.
func DebugEnabled() bool {
	return os.Getenv("TS_DEBUG") != ""
}

// Debugf logs a formatted message when debug mode is enabled.
func Debugf(format string, args ...interface{}) {
	if !DebugEnabled() {
		return
	}
	log.Printf("[debug] "+format, args...)
}

// Debugln logs a message when debug mode is enabled.
func Debugln(args ...interface{}) {
	if !DebugEnabled() {
		return
	}
	log.Println(append([]interface{}{"[debug]"}, args...)...)
}
