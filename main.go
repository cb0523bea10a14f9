package main

import (
	"os"

	"github.com/navarrastar/newsletter-widget/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
