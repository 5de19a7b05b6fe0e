// Command probset wraps every practice problem in a small CLI demo, so
// each solution can be poked at from the shell as well as from tests.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
