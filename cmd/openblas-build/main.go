package main

import "github.com/blasgo/openblas-build/cmd/openblas-build/internal"

func main() {
	internal.Execute()
}
