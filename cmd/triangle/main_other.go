//go:build !(js && wasm)

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "triangle runs in a browser: build with GOOS=js GOARCH=wasm and serve with cmd/wasm-demo")
	os.Exit(2)
}
