package main

import (
	"log"
	"os"

	"github.com/avc/cardbrand/internal/app"
)

func main() {
	application, err := app.NewApp(os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("Failed to run application: %v", err)
	}
}
