package main

import "github.com/ZacxDev/storefront/cmd"

func main() {
	cmd.Execute()
}
