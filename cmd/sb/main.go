package main

import "starbank/cmd/sb/root"

func main() {
	root.Execute()
}
