package main

import "diascreen/cmd/client/cmd"

func main() {
	cmd.Execute()
}
