// Command sleepctl loads Fitbit sleep exports and writes tables, charts and
// spreadsheets to disk.
package main

import (
	"fmt"
	"os"
)

var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
