package main

import "vehicle-reconciler/cmd"

func main() {
	cmd.Execute()
}
