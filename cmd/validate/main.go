// Command validate lints a catalog JSON file without starting the API.
// With no arguments it validates the built-in catalog.
package main

import (
	"fmt"
	"os"

	"github.com/lunarbloom/courtship/pkg/catalog"
)

func main() {
	cat := catalog.Default()
	source := "built-in catalog"

	if len(os.Args) > 1 {
		var err error
		cat, err = catalog.Load(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load %s: %v\n", os.Args[1], err)
			os.Exit(1)
		}
		source = os.Args[1]
	}

	if err := cat.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: INVALID: %v\n", source, err)
		os.Exit(1)
	}

	fmt.Printf("%s: OK (%d actions, %d events, %d dilemmas, %d stages, %d endings)\n",
		source, len(cat.Actions), len(cat.Events), len(cat.Dilemmas), len(cat.Stages), len(cat.Endings))
}
