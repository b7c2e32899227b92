package main

import "github.com/jcortez/mailgrab/internal/cli"

func main() {
	cli.Execute()
}
