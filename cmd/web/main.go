// /cmd/web/main.go
package main

import "github.com/ericoliveiras/cobbs-crumbs/cmd/web/commands"

func main() {
	commands.Execute()
}
