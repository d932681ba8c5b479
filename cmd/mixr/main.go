// Command mixr is the command-line companion for the MIXR cocktail library.
//
// Usage:
//
//	mixr [--config file] [--verbose] [--quiet] <command>
package main

import "os"

func main() {
	if err := run(newRootCmd()); err != nil {
		os.Exit(1)
	}
}
