package main

import (
	"fmt"
	"os"
)

// logger reports the progress of dectree commands on STDERR when
// --verbose is set.
type logger bool

// Logf writes a line with the formatted message if the logger is enabled.
func (l logger) Logf(format string, a ...interface{}) {
	if !l {
		return
	}
	fmt.Fprintf(os.Stderr, format+"\n", a...)
}
