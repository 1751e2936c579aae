package main

import (
	"fmt"
	"os"

	"quadwave/internal/app"
)

func main() {
	fmt.Println("quadwave - two quads, two fragment shaders")
	fmt.Println("Controls:")
	fmt.Println("  Escape : Exit")
	fmt.Println()

	application, err := app.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer application.Cleanup()

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
