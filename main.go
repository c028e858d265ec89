package main

import "github.com/javanhut/codenav/cli"

func main() {
	cli.Execute()
}
