// Copyright 2026 the Scitour authors. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Scitour runs the demonstrations from the scientific-computing tour
// in article order. With no arguments it runs the demos that need
// nothing beyond the local host; the entrez and map demos, which
// need the network and a Python interpreter respectively, run when
// named explicitly or with -all.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/file/s3file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/must"
	"github.com/grailbio/bigmachine"
	"github.com/grailbio/bigmachine/ec2system"
	"github.com/scitour/scitour"
	"github.com/scitour/scitour/bio"
	"github.com/scitour/scitour/chart"
	"github.com/scitour/scitour/eutils"
	"github.com/scitour/scitour/montecarlo"
	"github.com/scitour/scitour/pymap"
)

func init() {
	file.RegisterImplementation("s3", func() file.Implementation {
		return s3file.NewImplementation(
			s3file.NewDefaultProvider(session.Options{}), s3file.Options{})
	})
}

var (
	samples     = flag.Int("samples", 1e6, "number of Monte Carlo samples")
	workers     = flag.Int("workers", runtime.NumCPU(), "number of local sampling workers")
	machines    = flag.Int("machines", 2, "number of bigmachine workers for -distributed")
	seed        = flag.Int64("seed", 42, "random seed for the estimators")
	distributed = flag.Bool("distributed", false, "run the π estimate on bigmachine workers")
	system      = flag.String("system", "local", "bigmachine system for -distributed: local or ec2")
	all         = flag.Bool("all", false, "run every demo, including those that need the network and Python")
	fastaPath   = flag.String("fasta", "", "FASTA input: a path, an http(s) URL, or an s3 URL; a built-in sample if empty")
	chartPath   = flag.String("chart", "convergence.png", "path for the convergence chart")
	mapPath     = flag.String("map", "map.html", "path for the interactive map")
	email       = flag.String("email", "", "contact email sent with NCBI E-utilities queries")
)

// sampleFASTA is used by the bio demo when no -fasta input is given.
const sampleFASTA = `>demo1 synthetic demonstration sequence
ATGGCGTACGGGCTTTGA
>demo2 synthetic demonstration sequence, one substitution
ATGGCGTTCGGGCTTTGA
`

// offlineDemos are run when no demos are named on the command line.
var offlineDemos = []string{"circle", "sum", "fib", "pi", "chart", "bio"}

// allDemos lists every demo in article order.
var allDemos = []string{"circle", "sum", "fib", "pi", "chart", "bio", "entrez", "map"}

func usage() {
	fmt.Fprintf(os.Stderr, `usage: scitour [flags] [demo ...]

Scitour runs the demonstrations accompanying the scientific-computing
tour article. The demos, in article order, are:

	circle
		Closed-form circle area and circumference.
	sum
		A higher-order summation helper.
	fib
		The Fibonacci sequence generator.
	pi
		Monte Carlo estimation of π, serial and parallel; with
		-distributed, also across bigmachine workers.
	chart
		The estimator's convergence, plotted with gonum/plot.
	bio
		FASTA parsing, transcription, translation, and pairwise
		alignment with biogo.
	entrez
		A record lookup against NCBI's Entrez service (network).
	map
		An interactive map rendered by Python's folium (python).

With no arguments, the demos that need only the local host are run.
`)
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	log.AddFlags()
	log.SetFlags(0)
	log.SetPrefix("scitour: ")
	must.Func = log.Fatal
	flag.Usage = usage
	flag.Parse()

	var b *bigmachine.B
	if *distributed {
		// Bigmachine must take over early in worker processes.
		switch *system {
		case "local":
			b = bigmachine.Start(bigmachine.Local)
		case "ec2":
			b = bigmachine.Start(&ec2system.System{})
		default:
			log.Fatalf("unknown system %q", *system)
		}
		defer b.Shutdown()
	}

	demos := flag.Args()
	if len(demos) == 0 {
		demos = offlineDemos
		if *all {
			demos = allDemos
		}
	}
	ctx := context.Background()
	for _, demo := range demos {
		var err error
		switch demo {
		case "circle":
			err = circleDemo()
		case "sum":
			err = sumDemo()
		case "fib":
			err = fibDemo()
		case "pi":
			err = piDemo(ctx, b)
		case "chart":
			err = chartDemo()
		case "bio":
			err = bioDemo(ctx)
		case "entrez":
			err = entrezDemo()
		case "map":
			err = mapDemo(ctx)
		default:
			log.Fatalf("unknown demo %q", demo)
		}
		if err != nil {
			log.Fatalf("%s: %v", demo, err)
		}
	}
}

func circleDemo() error {
	const r = 2.5
	fmt.Printf("circle: r=%g area=%.4f circumference=%.4f\n",
		r, scitour.CircleArea(r), scitour.CircleCircumference(r))
	return nil
}

func sumDemo() error {
	f := func(x int) int { return 2*x + 4 }
	g := func(x int) int { return x*x + 4 }
	fmt.Printf("sum: Σ(2x+4) over [1,10] = %d\n", scitour.Sum(f, 1, 10))
	fmt.Printf("sum: Σ(x²+4) over [1,10] = %d\n", scitour.Sum(g, 1, 10))
	return nil
}

func fibDemo() error {
	seq, err := scitour.Fibonacci(scitour.DefaultFibonacciLength)
	if err != nil {
		return err
	}
	strs := make([]string, len(seq))
	for i, v := range seq {
		strs[i] = fmt.Sprint(v)
	}
	fmt.Printf("fib: %s\n", strings.Join(strs, " "))
	return nil
}

func piDemo(ctx context.Context, b *bigmachine.B) error {
	start := time.Now()
	serial, err := montecarlo.Estimate(*seed, *samples)
	if err != nil {
		return err
	}
	fmt.Printf("pi: serial    %d samples: %.6f ± %.6f (%s)\n",
		serial.N, serial.Pi(), serial.StdErr(), time.Since(start).Round(time.Millisecond))

	start = time.Now()
	parallel, err := montecarlo.EstimateParallel(*seed, *samples, *workers)
	if err != nil {
		return err
	}
	fmt.Printf("pi: parallel  %d samples, %d workers: %.6f ± %.6f (%s)\n",
		parallel.N, *workers, parallel.Pi(), parallel.StdErr(), time.Since(start).Round(time.Millisecond))

	if b != nil {
		start = time.Now()
		dist, err := montecarlo.EstimateDistributed(ctx, b, *seed, *samples, *machines)
		if err != nil {
			return err
		}
		fmt.Printf("pi: bigmachine %d samples, %d machines: %.6f ± %.6f (%s)\n",
			dist.N, *machines, dist.Pi(), dist.StdErr(), time.Since(start).Round(time.Millisecond))
	}
	return nil
}

func chartDemo() error {
	var cs []chart.Sample
	for _, n := range chartSizes(*samples) {
		r, err := montecarlo.EstimateParallel(*seed, n, *workers)
		if err != nil {
			return err
		}
		cs = append(cs, chart.Sample{N: r.N, Estimate: r.Pi()})
	}
	if err := chart.Convergence(cs, *chartPath); err != nil {
		return err
	}
	fmt.Printf("chart: wrote %s\n", *chartPath)
	return nil
}

// ChartSizes returns the sample counts plotted by the chart demo:
// powers of ten from min(100, max) up to max, so that a small
// -samples still yields a curve with at least one point.
func chartSizes(max int) []int {
	if max < 1 {
		return nil
	}
	start := 100
	if max < start {
		start = max
	}
	var sizes []int
	for n := start; n <= max; n *= 10 {
		sizes = append(sizes, n)
	}
	return sizes
}

func bioDemo(ctx context.Context) error {
	var (
		in  io.Reader = strings.NewReader(sampleFASTA)
		src           = "built-in sample"
	)
	if *fastaPath != "" {
		rc, err := bio.Open(ctx, *fastaPath)
		if err != nil {
			return err
		}
		defer rc.Close()
		in, src = rc, *fastaPath
	}
	seqs, err := bio.ReadFASTA(in)
	if err != nil {
		return err
	}
	fmt.Printf("bio: %s: %d sequences\n", src, len(seqs))
	s := seqs[0]
	fmt.Printf("bio: %s: %v\n", s.ID, s.Seq)
	end := len(s.Seq)
	if end > 9 {
		end = 9
	}
	sub, err := bio.Subsequence(s, 0, end)
	if err != nil {
		return err
	}
	fmt.Printf("bio: %s[0:%d]: %v\n", s.ID, end, sub.Seq)
	rna, err := bio.Transcribe(s)
	if err != nil {
		return err
	}
	fmt.Printf("bio: transcribed: %v\n", rna.Seq)
	protein, err := bio.Translate(rna)
	if err != nil {
		return err
	}
	fmt.Printf("bio: translated: %v\n", protein.Seq)
	if len(seqs) < 2 {
		return nil
	}
	a, b, err := bio.Align(seqs[0], seqs[1])
	if err != nil {
		return err
	}
	fmt.Printf("bio: alignment:\n\t%s\n\t%s\n", a, b)
	fmt.Printf("bio: edit distance %s vs %s: %d\n",
		seqs[0].ID, seqs[1].ID, bio.Distance(seqs[0], seqs[1]))
	return nil
}

func entrezDemo() error {
	eutils.Email = *email
	const query = "hemoglobin subunit beta homo sapiens mRNA"
	ids, err := eutils.Search("nucleotide", query, 2)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return fmt.Errorf("no results for %q", query)
	}
	recs, err := eutils.Fetch("nucleotide", ids...)
	if err != nil {
		return err
	}
	for _, rec := range recs {
		fmt.Printf("entrez: %s (%s): %d bases: %s\n",
			rec.Accession, rec.Organism, rec.Length, rec.Defline)
		fmt.Printf("entrez: %s sequence: %s...\n", rec.Accession, prefix(rec.Sequence, 40))
	}
	return nil
}

// Prefix returns at most the first n characters of s.
func prefix(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func mapDemo(ctx context.Context) error {
	points := []pymap.Point{
		{Name: "Golden Gate Bridge", Lat: 37.8199, Lon: -122.4783},
		{Name: "Coit Tower", Lat: 37.8024, Lon: -122.4058},
		{Name: "Ferry Building", Lat: 37.7955, Lon: -122.3937},
	}
	if err := pymap.Render(ctx, points, *mapPath); err != nil {
		return err
	}
	fmt.Printf("map: wrote %s\n", *mapPath)
	return nil
}
