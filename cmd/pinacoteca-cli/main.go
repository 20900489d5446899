package main

import "pinacoteca/cmd/pinacoteca-cli/cmd"

func main() {
	cmd.Execute()
}
