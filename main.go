/*
Copyright © 2026 doughbyte
*/
package main

import "github.com/doughbyte/crumb/cmd"

func main() {
	cmd.Execute()
}
