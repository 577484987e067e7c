// Package main provides the micrograd CLI.
//
// Usage:
//
//	micrograd grad "(x ^ y + z) ^ z" --var x=2 --var y=3 --var z=0.1
//	micrograd grad "x / x" --var x=4 --check
//	MICROGRAD_PRECISION=float32 micrograd grad "x * y" -v x=1 -v y=2
package main

import (
	"log"
	"os"
)

const version = "v0.1.0"

func main() {
	log.SetFlags(0)
	log.SetPrefix("micrograd: ")

	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		log.Fatal(err)
	}
}
