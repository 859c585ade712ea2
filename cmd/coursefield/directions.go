package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/coursefield/internal/field"
)

var directionsCmd = &cobra.Command{
	Use:   "directions",
	Short: "List the GOAL directions that fit",
	Long: `Print the field size and every direction whose GOAL, 1000 mm from START,
stays inside the field.

Examples:
  coursefield directions --start-x 400 --start-y 400
  coursefield directions --horizontal 2 --start-x 400 --start-y 400`,
	Args: cobra.NoArgs,
	Run:  runDirections,
}

func runDirections(cmd *cobra.Command, _ []string) {
	_, state, err := loadState(cmd)
	if err != nil {
		fail(err)
	}
	if err := writeDirections(cmd.OutOrStdout(), state); err != nil {
		fail(err)
	}
}

// writeDirections prints the field, START and the available GOALs.
func writeDirections(w io.Writer, s *field.State) error {
	start, ok := s.Start()
	if !ok {
		return fmt.Errorf("%w (use --start-x and --start-y)", field.ErrNoStart)
	}

	size := s.Size()
	fmt.Fprintf(w, "field: %dx%d boards, %dx%d mm\n", s.Horizontal(), s.Vertical(), size.W, size.H)
	fmt.Fprintf(w, "start: %s\n", start)

	dirs := s.AvailableDirections()
	if len(dirs) == 0 {
		fmt.Fprintln(w, "no direction fits")
		return nil
	}
	for _, d := range dirs {
		marker := " "
		if d == s.Direction() {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %-5s %s\n", marker, d, field.Resolve(start, d, field.GoalDistance))
	}
	return nil
}
