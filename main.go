package main

import "github.com/meshcut/vntet/cmd"

func main() {
	cmd.Execute()
}
