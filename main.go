package main

import "github.com/turbolytics/scrivener/internal/cmd"

func main() {
	cmd.Execute()
}
