package main

import "github.com/arch-tools/pkgsmith/internal/cmd"

func main() {
	cmd.Execute()
}
