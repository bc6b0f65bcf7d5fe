package main

import "wasm-player-server/cmd"

func main() {
	cmd.Execute()
}
