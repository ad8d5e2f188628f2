package main

import "log"

var debugEnabled bool

// debugLog prints a trace line when Debug is enabled in the config.
func debugLog(format string, args ...any) {
	if !debugEnabled {
		return
	}
	log.Printf("Debug: "+format, args...)
}
