// SPDX-License-Identifier: MIT

// Command ddg inspects discrete exterior calculus operators of a mesh and runs a
// factor and solve round trip through the factorization cache.
//
//	ddg ops   --shape icosahedron
//	ddg solve --mesh bunny.obj --t 0.5 --backend dense --source 3
//	ddg solve --config ddg.yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ddg:", err)
		os.Exit(1)
	}
}
