package main

import "github.com/josephlewis42/logos/cmd"

func main() {
	cmd.Execute()
}
