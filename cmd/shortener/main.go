package main

import (
	"log"

	"github.com/Kranthi2741/tinylink/internal/app"
)

func main() {
	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
