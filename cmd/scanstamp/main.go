// Command scanstamp renames scanned documents into "YYYYMMDD - Title.ext"
// form, logging every rename so a batch can be undone.
package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/backmassage/scanstamp/internal/cli"
)

// version is set at build time via -ldflags.
var version = "1.0.0-dev"

func main() {
	if err := cli.NewRootCommand(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "scanstamp: %v\n", err)
		os.Exit(1)
	}
}
