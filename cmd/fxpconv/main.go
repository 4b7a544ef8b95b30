// Copyright 2026 Aleksandr Demakin. All rights reserved.

// Command fxpconv inspects fixed-point formats and values.
//
// Usage:
//
//	fxpconv -bits 8 -frac 3                    # describe the format
//	fxpconv -bits 8 -frac 3 -value 0.5         # encode a number
//	fxpconv -bits 16 -signed -frac 8 -raw -640 # decode a stored integer
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"

	fixed "github.com/avdva/binfixed"
	"github.com/avdva/binfixed/render"
)

var (
	bits   = flag.Uint("bits", 0, "Logical bit width (required)")
	signed = flag.Bool("signed", false, "Use a signed format")
	frac   = flag.Int("frac", 0, "Fractional bits; may be negative or exceed the width")
	value  = flag.String("value", "", "Number to encode into the format")
	raw    = flag.String("raw", "", "Stored integer to decode as the format")
)

func main() {
	flag.Parse()
	if *bits == 0 {
		fmt.Fprintln(os.Stderr, "Error: -bits is required")
		flag.Usage()
		os.Exit(1)
	}
	f, err := fixed.New(*bits, *signed, *frac)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(render.Describe(f))

	if *value != "" {
		x, err := strconv.ParseFloat(*value, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: bad -value: %v\n", err)
			os.Exit(1)
		}
		v := fixed.FromRaw(f, uint64(int64(math.RoundToEven(math.Ldexp(x, f.FracBits())))))
		show(v)
	}
	if *raw != "" {
		n, err := strconv.ParseInt(*raw, 0, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: bad -raw: %v\n", err)
			os.Exit(1)
		}
		show(fixed.FromRaw(f, uint64(n)))
	}
}

func show(v fixed.Value) {
	fmt.Printf("raw %d (%#x), exact %s, float64 %v\n", v.Int64(), v.Raw(), render.String(v), v.Float64())
}
