package main

import "github.com/Kalmar41k/goit-algo-hw-05/internal/cmd"

func main() {
	cmd.Execute()
}
