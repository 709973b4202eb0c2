package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"
	duatmcp "github.com/sandglass-games/duat/internal/mcp"
)

func main() {
	contentFile := flag.String("content", "decks.yaml", "path to content YAML file")
	flag.Parse()

	duatmcp.SetContentFile(*contentFile)

	s := server.NewMCPServer("duat", "1.0.0")
	duatmcp.RegisterTools(s)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
