// retailctl is the operator CLI of the retail API: it seeds reference
// catalogs and hashes passwords for manual inserts.
package main

import "retailapi/cmd/retailctl/commands"

func main() {
	commands.Execute()
}
