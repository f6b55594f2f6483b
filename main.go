package main

import "github.com/inference-gateway/deskcast/cmd"

func main() {
	cmd.Execute()
}
