package main

import (
	"fmt"
	"os"

	"timeline-service/internal/logger"
)

func main() {
	defer logger.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
