// gyre-stress: the Go reimplementation of the original C repository's
// concurrent verification harness (spec.md section 8, scenarios 5 and 6).
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0
package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/agilira/gyre"
	"github.com/alecthomas/kong"
)

var cli struct {
	Capacity  string `help:"ring capacity; accepts plain integers or Ki/Mi suffixes, must be a power of two." default:"4Ki"`
	Producers int    `help:"number of producer goroutines." default:"4"`
	Consumers int    `help:"number of consumer goroutines." default:"4"`
	PerProd   int    `help:"items pushed by each producer." default:"250000" name:"per-producer"`
	Single    bool   `help:"use FlagSingle; only valid with --producers=1 --consumers=1." default:"false"`
}

func main() {
	kong.Parse(&cli,
		kong.Description("stress-tests a gyre.Ring and reports whether every pushed item was popped exactly once."),
	)

	if cli.Single && (cli.Producers != 1 || cli.Consumers != 1) {
		fmt.Fprintln(os.Stderr, "gyre-stress: --single requires --producers=1 --consumers=1")
		os.Exit(2)
	}

	capacity, err := gyre.ParseCapacity(cli.Capacity)
	if err != nil {
		fmt.Fprintln(os.Stderr, "gyre-stress:", err)
		os.Exit(2)
	}

	ring, err := gyre.New[int64](capacity)
	if err != nil {
		fmt.Fprintln(os.Stderr, "gyre-stress: New:", err)
		os.Exit(1)
	}
	defer ring.Close()

	flags := gyre.Flags(0)
	if cli.Single {
		flags = gyre.FlagSingle
	}

	total := cli.Producers * cli.PerProd
	var sum int64
	var produced int64

	var wg sync.WaitGroup
	wg.Add(cli.Producers)
	start := time.Now()
	for p := 0; p < cli.Producers; p++ {
		go func(base int64) {
			defer wg.Done()
			buf := [1]int64{}
			for i := int64(0); i < int64(cli.PerProd); i++ {
				buf[0] = base + i
				for {
					if n, _, err := ring.Push(buf[:], flags); n == 1 {
						break
					} else if err == nil {
						break
					}
				}
			}
		}(int64(p) * int64(cli.PerProd))
	}

	done := make(chan struct{})
	go func() { wg.Wait(); close(done) }()

	var drainWG sync.WaitGroup
	var drainedCounts = make([]int64, cli.Consumers)
	var sums = make([]int64, cli.Consumers)
	drainWG.Add(cli.Consumers)
	for c := 0; c < cli.Consumers; c++ {
		go func(idx int) {
			defer drainWG.Done()
			dst := make([]int64, 1)
			for {
				n, _, err := ring.Pop(dst, flags)
				if n == 1 {
					drainedCounts[idx]++
					sums[idx] += dst[0]
					continue
				}
				_ = err
				select {
				case <-done:
					for {
						n, _, _ := ring.Pop(dst, flags)
						if n == 0 {
							return
						}
						drainedCounts[idx]++
						sums[idx] += dst[0]
					}
				default:
				}
			}
		}(c)
	}
	drainWG.Wait()
	elapsed := time.Since(start)

	var drained int64
	for i := range drainedCounts {
		drained += drainedCounts[i]
		sum += sums[i]
	}
	produced = int64(total)

	expectedSum := int64(total-1) * int64(total) / 2
	ok := drained == produced && sum == expectedSum

	fmt.Printf("capacity=%d producers=%d consumers=%d single=%v\n", capacity, cli.Producers, cli.Consumers, cli.Single)
	fmt.Printf("produced=%d drained=%d sum=%d expected_sum=%d\n", produced, drained, sum, expectedSum)
	fmt.Printf("elapsed=%s throughput=%.0f ops/s\n", elapsed, float64(produced)/elapsed.Seconds())
	if ok {
		fmt.Println("PASS: conservation property holds")
		return
	}
	fmt.Println("FAIL: conservation property violated")
	os.Exit(1)
}
