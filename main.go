package main

import "github.com/dava-framework/dava-gen/cmd"

func main() {
	cmd.Execute()
}
