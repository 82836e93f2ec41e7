package main

import (
	"log"

	"siegefall/internal/core"
)

func main() {
	game := core.NewGame()
	if err := game.Run(); err != nil {
		log.Fatal(err)
	}
}
