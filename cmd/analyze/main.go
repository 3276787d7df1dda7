package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"reverse_waterways/pkg/josm"
	"reverse_waterways/pkg/osmstream"
	"reverse_waterways/pkg/review"
)

func main() {
	input := flag.String("input", "", "Path to .osm.pbf file")
	doReview := flag.Bool("review", false, "Interactively load each candidate way into JOSM")
	josmURL := flag.String("josm", josm.DefaultBaseURL, "JOSM remote control base URL")
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "Usage: analyze --input <file.osm.pbf> [--review] [--josm URL]")
		os.Exit(1)
	}

	f, err := os.Open(*input)
	if err != nil {
		log.Fatalf("Failed to open input file: %v", err)
	}
	defer f.Close()

	start := time.Now()
	log.Printf("Analyzing %s...", *input)
	report, err := osmstream.Analyze(context.Background(), f)
	if err != nil {
		log.Fatalf("Failed to analyze: %v", err)
	}
	log.Printf("Scanned %d ways: %d ways between junctions (%.1fs)",
		report.WaysScanned, report.Count(), time.Since(start).Seconds())

	for _, id := range report.Edges {
		fmt.Println(id)
	}

	if *doReview {
		client := josm.NewClient(*josmURL)
		review.Run(context.Background(), client, bufio.NewReader(os.Stdin), os.Stdout, report.Edges)
	}
}
