// Package regions maintains the tab-delimited ledger of region extracts:
// one row per region with its name, download URL, reported file size and
// the count of ways between junctions once the region has been processed.
package regions

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// Region is one ledger row. Count stays empty until the region has been
// analyzed; it is kept as a string so unprocessed rows round-trip exactly.
type Region struct {
	Name  string
	URL   string
	Size  string
	Count string
}

// Processed reports whether the region already carries a count.
func (r *Region) Processed() bool {
	return r.Count != ""
}

// CountValue returns the recorded count. The second return is false for
// unprocessed or malformed counts.
func (r *Region) CountValue() (int, bool) {
	if r.Count == "" {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(r.Count))
	if err != nil {
		return 0, false
	}
	return n, true
}

// SetCount marks the region processed with the given count.
func (r *Region) SetCount(n int) {
	r.Count = strconv.Itoa(n)
}

// Load reads the ledger. Rows are tab-delimited with no header; columns
// are name, url, size, count. Trailing columns may be absent.
func Load(path string) ([]Region, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read ledger: %w", err)
	}

	regs := make([]Region, 0, len(rows))
	for i, row := range rows {
		if len(row) < 2 {
			return nil, fmt.Errorf("ledger row %d: need at least name and url, got %d fields", i+1, len(row))
		}
		r := Region{Name: row[0], URL: row[1]}
		if len(row) > 2 {
			r.Size = row[2]
		}
		if len(row) > 3 {
			r.Count = row[3]
		}
		regs = append(regs, r)
	}
	return regs, nil
}

// Save rewrites the ledger with all four columns per row.
func Save(path string, regs []Region) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create ledger: %w", err)
	}

	w := csv.NewWriter(f)
	w.Comma = '\t'
	for i := range regs {
		r := &regs[i]
		if err := w.Write([]string{r.Name, r.URL, r.Size, r.Count}); err != nil {
			f.Close()
			return fmt.Errorf("write ledger row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush ledger: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close ledger: %w", err)
	}
	return nil
}

// TotalCount sums the counts of all processed regions.
func TotalCount(regs []Region) int {
	total := 0
	for i := range regs {
		if n, ok := regs[i].CountValue(); ok {
			total += n
		}
	}
	return total
}

// AllProcessed reports whether every region carries a count. An empty
// ledger counts as fully processed.
func AllProcessed(regs []Region) bool {
	for i := range regs {
		if !regs[i].Processed() {
			return false
		}
	}
	return true
}

// ParseSize converts a human-readable size such as "6.9 GB", possibly
// parenthesized, to bytes. Empty or unparseable sizes return +Inf so they
// sort last; a bare number with no recognized unit is taken as bytes.
func ParseSize(s string) float64 {
	s = strings.NewReplacer("(", "", ")", "").Replace(s)
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return math.Inf(1)
	}
	num, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return math.Inf(1)
	}
	if len(fields) < 2 {
		return num
	}
	unit := strings.ToLower(fields[1])
	switch {
	case strings.HasPrefix(unit, "kb"):
		return num * 1024
	case strings.HasPrefix(unit, "mb"):
		return num * 1024 * 1024
	case strings.HasPrefix(unit, "gb"):
		return num * 1024 * 1024 * 1024
	}
	return num
}

// countKey orders regions for selection. Unprocessed regions read as +Inf
// so they are always picked before any processed one.
func countKey(r *Region) float64 {
	n, ok := r.CountValue()
	if !ok {
		return math.Inf(1)
	}
	return float64(n)
}

// PickNext chooses the region to process: the one with the highest count
// key, breaking ties by smallest parsed size (cheapest download first).
// Returns nil for an empty ledger.
func PickNext(regs []Region) *Region {
	if len(regs) == 0 {
		return nil
	}
	best := &regs[0]
	for i := 1; i < len(regs); i++ {
		r := &regs[i]
		rk, bk := countKey(r), countKey(best)
		if rk > bk || (rk == bk && ParseSize(r.Size) < ParseSize(best.Size)) {
			best = r
		}
	}
	return best
}
