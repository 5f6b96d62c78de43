// logplot - Simulation Log Table and Plot Tool
//
// logplot reads whitespace-delimited simulation logs, extracts the numeric
// columns of each run, and shows them as a table or a line chart.
package main

import (
	"os"

	"github.com/ccollicutt/logplot/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
