package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/sandglass-games/duat/internal/web"
)

func main() {
	port := flag.Int("port", 8080, "HTTP port to listen on")
	contentFile := flag.String("content", "decks.yaml", "path to content YAML file")
	flag.Parse()

	srv, err := web.NewServer(*contentFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("duat combat server listening on http://localhost:%d", *port)
	if err := srv.ListenAndServe(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
