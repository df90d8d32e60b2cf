package main

import "github.com/platelunch/ordercore/cmd"

func main() {
	cmd.Execute()
}
