// Command voicecmd interprets a scheduling command from the terminal.
package main

import (
	"os"
	"time"
)

func main() {
	cmd := newRootCmd(os.Stdin, os.Stdout, time.Now)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
