package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
)

// GoldenData represents a single test case in the golden file
type GoldenData struct {
	N      uint64 `json:"n"`
	Result string `json:"result"`
}

func main() {
	outputDir := flag.String("out", "internal/bench/testdata", "Output directory for the golden file")
	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	filename := filepath.Join(*outputDir, "fibonacci_golden.json")
	file, err := os.Create(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	// The targets cover the validator's interesting territory: the base
	// cases, the uint64 overflow boundary at 93, the sparse seed indices,
	// and a spread of larger values reached only by derivation.
	targets := []uint64{
		0, 1, 2, 3, 4, 5, 10, 20, 50, 92, 93, 94,
		100, 128, 150, 200, 256, 300, 500,
		512, 1000, 1024, 2000,
	}

	var data []GoldenData

	fmt.Println("Generating golden data...")

	for _, n := range targets {
		res := fibBig(n)
		data = append(data, GoldenData{
			N:      n,
			Result: res.String(),
		})
		fmt.Printf("Generated F(%d)\n", n)
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated golden file at %s\n", filename)
}

// fibBig calculates the nth Fibonacci number using math/big (iterative
// implementation). This serves as the oracle using the standard library.
func fibBig(n uint64) *big.Int {
	if n == 0 {
		return big.NewInt(0)
	}
	if n == 1 {
		return big.NewInt(1)
	}

	a := big.NewInt(0)
	b := big.NewInt(1)

	for i := uint64(2); i <= n; i++ {
		a.Add(a, b)
		a, b = b, a
	}
	return b
}
