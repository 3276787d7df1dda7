package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"

	"reverse_waterways/pkg/config"
	"reverse_waterways/pkg/download"
	"reverse_waterways/pkg/josm"
	"reverse_waterways/pkg/osmstream"
	"reverse_waterways/pkg/regions"
	"reverse_waterways/pkg/review"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()
	client := josm.NewClient(cfg.JOSMURL)
	stdin := bufio.NewReader(os.Stdin)

	for {
		regs, err := regions.Load(cfg.RegionsFile)
		if err != nil {
			log.Fatalf("Failed to load regions: %v", err)
		}
		log.Printf("Total ways between junctions: %d", regions.TotalCount(regs))

		if regions.AllProcessed(regs) {
			log.Println("All regions have been processed.")
			return
		}

		region := regions.PickNext(regs)
		log.Printf("Selected region: %s (size %s)", region.Name, region.Size)

		filename := filepath.Join(cfg.WorkDir, path.Base(region.URL))
		log.Printf("Downloading fresh %s...", filename)
		if err := download.Fetch(ctx, region.URL, filename); err != nil {
			log.Fatalf("Download failed: %v", err)
		}
		log.Println("Download complete.")

		count, err := analyzeAndReview(ctx, filename, client, stdin)
		if err != nil {
			log.Fatalf("Failed to analyze %s: %v", filename, err)
		}

		region.SetCount(count)
		if err := regions.Save(cfg.RegionsFile, regs); err != nil {
			log.Fatalf("Failed to save regions: %v", err)
		}
		log.Printf("Updated %s with new count for %s", cfg.RegionsFile, region.Name)

		if !cfg.KeepDownloads {
			if err := os.Remove(filename); err != nil {
				log.Printf("Could not delete %s: %v", filename, err)
			} else {
				log.Printf("Deleted %s to save disk space", filename)
			}
		}
	}
}

// analyzeAndReview scans one downloaded extract, walks the user through
// the candidate ways in JOSM, and returns the count to record.
func analyzeAndReview(ctx context.Context, filename string, client *josm.Client, stdin *bufio.Reader) (int, error) {
	f, err := os.Open(filename)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	log.Printf("Analyzing %s...", filename)
	report, err := osmstream.Analyze(ctx, f)
	if err != nil {
		return 0, err
	}
	log.Printf(" %d ways between junctions", report.Count())

	review.Run(ctx, client, stdin, os.Stdout, report.Edges)

	fmt.Print("Press Enter to proceed to next region (or Ctrl+C to quit)...")
	if _, err := stdin.ReadString('\n'); err != nil {
		return 0, fmt.Errorf("read prompt: %w", err)
	}

	return report.Count(), nil
}
