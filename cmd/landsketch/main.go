package main

import "github.com/LandSketchLab/landsketch/cmd/landsketch/cmd"

func main() {
	cmd.Execute()
}
