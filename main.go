package main

import "shop-reconciler/cmd"

func main() {
	cmd.Execute()
}
