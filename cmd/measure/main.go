// Package main implements the measure command line tool, which converts
// lengths between units, reports walking distances, projects points along
// angles given in degrees or radians, and computes circle areas.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
