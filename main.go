package main

import "github.com/packwiz/curseconverter/cmd"

func main() {
	cmd.Execute()
}
