// Prints the warehouse DDL for a dialect, for manual provisioning or
// review. Run with: go run scripts/schema-dump.go [postgres|sqlite3]
package main

import (
	"fmt"
	"os"

	"github.com/nourishbox/nourishbox-data/pkg/warehouse"
)

func main() {
	driver := "postgres"
	if len(os.Args) > 1 {
		driver = os.Args[1]
	}
	if driver != "postgres" && driver != "sqlite3" {
		fmt.Fprintf(os.Stderr, "unknown dialect %q, want postgres or sqlite3\n", driver)
		os.Exit(1)
	}

	fmt.Printf("-- warehouse schema v%d (%s)\n\n", warehouse.SchemaVersion, driver)
	for _, t := range warehouse.Tables {
		fmt.Println(t.CreateStatement(driver) + ";")
		fmt.Println()
	}
}
