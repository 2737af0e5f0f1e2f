package main

import "github.com/sajjad-MoBe/LogKVStore/cmd"

func main() {
	cmd.Execute()
}
