package main

import (
	"mealky-way/cmd"

	_ "go.uber.org/automaxprocs"
)

func main() {
	cmd.Start()
}
