package main

import (
	"log"
	"os"

	"github.com/CognitoIQ/xsd2poco/pocogen"
)

func main() {
	log.SetFlags(0)
	var cfg pocogen.Config
	cfg.Option(pocogen.DefaultOptions...)
	cfg.Option(pocogen.LogOutput(log.New(os.Stderr, "", 0)))
	cfg.Option(pocogen.LogLevel(1))

	if err := cfg.GenCLI(os.Args[1:]...); err != nil {
		log.Fatal(err)
	}
}
