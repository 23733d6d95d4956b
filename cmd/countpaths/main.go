// countpaths counts Hamiltonian-style self-avoiding path systems on a
// rectangular grid via a row-by-row transfer-matrix dynamic program.
package main

import "github.com/aurajamming/hamiltonpaths/cmd/countpaths/cmd"

func main() {
	cmd.Execute()
}
