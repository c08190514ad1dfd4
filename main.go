package main

import (
	"log"

	"github.com/Anirudh646/dfghjkddfghj/app"
)

func main() {
	// setup and run app
	if err := app.SetupAndRunServer(); err != nil {
		log.Fatal(err)
	}
}
