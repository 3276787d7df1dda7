// Package review drives the interactive per-way review session.
package review

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/paulmach/osm"

	"reverse_waterways/pkg/josm"
)

// Run steps through the candidate ways one at a time, loading each into
// JOSM after the user presses Enter. A failed load is reported and
// skipped; the rest of the batch always continues. Run returns early if
// the prompt reader is exhausted (e.g. stdin closed).
func Run(ctx context.Context, client *josm.Client, prompts *bufio.Reader, out io.Writer, edges []osm.WayID) {
	total := len(edges)
	for i, id := range edges {
		fmt.Fprint(out, "Press Enter to load the next way (or Ctrl+C to quit)...")
		if _, err := prompts.ReadString('\n'); err != nil {
			return
		}

		fmt.Fprintf(out, "[%d/%d] Loading way %d into JOSM...\n", i+1, total, id)
		if err := client.LoadWay(ctx, id); err != nil {
			fmt.Fprintf(out, " Failed to load into JOSM: %v\n", err)
			continue
		}
		fmt.Fprintln(out, " Loaded successfully in JOSM")
	}
}
