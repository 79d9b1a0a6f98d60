package main

import (
	"log"

	"github.com/gliderkitchen/kitchen/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
