// Package report turns a pool.Result into operator-facing summaries: a
// breakdown by pool size for the console, and a CSV file for offline
// analysis. It mirrors the teacher's own reporting split (console printer
// plus timestamped CSV writer) over this core's own result shape.
package report

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/boguszjelinski/kern/lcm"
	"github.com/boguszjelinski/kern/pool"
)

// SizeBreakdown counts how many pools of a given size were found, how many
// orders they consumed, and their summed cost.
type SizeBreakdown struct {
	Size      int
	PoolCount int
	OrderCount int
	TotalCost int
}

// Summary is the aggregate view over one Dynapool call's Result.
type Summary struct {
	PoolsFound    int
	CabsUsed      int
	OrdersPooled  int
	TotalCost     int
	BySize        []SizeBreakdown
	TimePerPool   []float64
}

// Summarize builds a Summary from a solver result. in is the same Inputs
// passed to Dynapool, used only to size the per-order/per-cab bookkeeping;
// it is never mutated.
func Summarize(res pool.Result, in pool.Inputs) Summary {
	bySize := make(map[int]*SizeBreakdown)
	cabsSeen := make(map[int]bool)
	sum := Summary{TimePerPool: res.TimePerPool}

	for _, b := range res.Pools {
		size := len(b.OrdIDs) / 2 // each order contributes one pickup and one drop-off action
		if size == 0 {
			continue
		}
		sb, ok := bySize[size]
		if !ok {
			sb = &SizeBreakdown{Size: size}
			bySize[size] = sb
		}
		sb.PoolCount++
		sb.OrderCount += size
		sb.TotalCost += b.Cost

		sum.PoolsFound++
		sum.OrdersPooled += size
		sum.TotalCost += b.Cost
		cabsSeen[b.Cab] = true
	}
	sum.CabsUsed = len(cabsSeen)

	for size := 1; size <= len(in.Orders); size++ {
		if sb, ok := bySize[size]; ok {
			sum.BySize = append(sum.BySize, *sb)
		}
	}
	return sum
}

// PrintConsoleReport prints a human-readable summary to stdout.
func PrintConsoleReport(sum Summary) {
	fmt.Println("=== Pool Search Report ===")
	fmt.Printf("Pools found: %d\n", sum.PoolsFound)
	fmt.Printf("Orders pooled: %d\n", sum.OrdersPooled)
	fmt.Printf("Cabs used: %d\n", sum.CabsUsed)
	fmt.Printf("Total cost: %d minutes\n", sum.TotalCost)
	for _, sb := range sum.BySize {
		fmt.Printf("  size=%d pools=%d orders=%d cost=%d\n", sb.Size, sb.PoolCount, sb.OrderCount, sb.TotalCost)
	}
	for i, t := range sum.TimePerPool {
		fmt.Printf("  pool size pass %d: %.3fs\n", i, t)
	}
}

// PrintFallbackReport prints the direct, unpooled assignments produced by
// lcm.FastLCMExhaustive — the path cmd/kern takes when Dynapool finds no
// pools at all and falls back to matching orders straight to cabs.
func PrintFallbackReport(assignments []lcm.Assignment, in pool.Inputs) {
	fmt.Println("=== Fallback Direct Assignment Report ===")
	fmt.Printf("No pools found; %d orders matched directly via exhaustive LCM\n", len(assignments))
	for _, a := range assignments {
		fmt.Printf("  order=%d cab=%d\n", in.Orders[a.OrderIndex].ID, in.Cabs[a.CabIndex].ID)
	}
}

// WriteCSVReport writes sum as a CSV file to reportPath. If reportPath is a
// directory, a timestamped file is created inside it; if it names a file, a
// timestamp is suffixed before the extension, so repeated runs never clobber
// each other. An empty reportPath is a no-op, matching the teacher's
// optional-report convention.
func WriteCSVReport(reportPath string, sum Summary) (string, error) {
	if reportPath == "" {
		return "", nil
	}
	ts := time.Now().Format("20060102-150405")
	outPath := reportPath
	if fi, err := os.Stat(outPath); err == nil && fi.IsDir() {
		outPath = filepath.Join(outPath, fmt.Sprintf("pool-report-%s.csv", ts))
	} else {
		ext := filepath.Ext(outPath)
		base := outPath[:len(outPath)-len(ext)]
		outPath = fmt.Sprintf("%s-%s%s", base, ts, ext)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("report: creating %s: %w", outPath, err)
	}
	defer f.Close()

	fmt.Fprintln(f, "section,size,pool_count,order_count,cost,timestamp")
	for _, sb := range sum.BySize {
		fmt.Fprintf(f, "size,%d,%d,%d,%d,%s\n", sb.Size, sb.PoolCount, sb.OrderCount, sb.TotalCost, ts)
	}
	fmt.Fprintf(f, "summary,,%d,%d,%d,%s\n", sum.PoolsFound, sum.OrdersPooled, sum.TotalCost, ts)
	log.Printf("CSV report written to %s", outPath)
	return outPath, nil
}
