// coursefield lays out a field of boards, places a START marker and derives
// a GOAL marker 1000 mm away in one of four directions.
//
// Usage:
//
//	coursefield edit          - Interactive terminal editor
//	coursefield render        - Render the field to PNG or text
//	coursefield directions    - List the GOAL directions that fit
//	coursefield window        - Desktop viewer
//
// Global flags:
//
//	--config <path>       - Config file (default search: ~/.coursefield/config.yaml, ./configs/coursefield.yaml)
//	--log-level <level>   - debug, info, warn, error
//	--horizontal <n>      - Boards along X
//	--vertical <n>        - Boards along Y
//	--start-x <mm>        - START X
//	--start-y <mm>        - START Y
//	--direction <dir>     - GOAL direction: right, left, up, down
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
	flagLayout   layoutFlags
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "coursefield",
	Short: "Course field - lay out boards, START and GOAL",
	Long: `coursefield draws a field made of 900x1350 mm boards with a 100 mm
coordinate grid, a START marker and a GOAL marker placed 1000 mm from START.
The origin is the bottom-left corner of the field.

Available commands:
  edit        - Interactive terminal editor
  render      - Render the field to PNG or text
  directions  - List the GOAL directions that fit
  window      - Desktop viewer

Examples:
  coursefield edit --horizontal 2
  coursefield render --horizontal 2 --start-x 400 --start-y 400 --direction right -o course.png
  coursefield directions --start-x 400 --start-y 400 --horizontal 2
  coursefield window --config ./my-course.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	flagLayout.register(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(directionsCmd)
	rootCmd.AddCommand(windowCmd)
}

// fail reports err and exits.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
