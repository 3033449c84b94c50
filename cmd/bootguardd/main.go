package main

import (
	"log"

	"github.com/industrial-edge/bootguard/pkg/daemon"
)

func main() {
	if err := daemon.Run(); err != nil {
		log.Fatal(err)
	}
}
