// Copyright 2026 the Scitour authors. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

/*
	Package scitour is the companion code for a magazine tour of
	scientific computing in Go. The tour walks through a handful of
	small, self-contained demonstrations, each backed by a package in
	this repository:

	Closed-form scalar math and simple series (this package): circle
	formulas, a higher-order summation helper, and a Fibonacci
	generator.

	Monte Carlo estimation (package montecarlo): estimating π by
	random sampling, sequentially, across local goroutines, and across
	a cluster of bigmachine workers. The estimator demonstrates the
	task-pool-with-commutative-merge pattern: sample batches are
	summarized independently and merged by addition.

	Plotting (package chart): rendering the estimator's convergence
	behavior with gonum/plot.

	Sequence analysis (package bio): reading FASTA inputs with biogo,
	extracting subsequences, transcribing DNA to RNA, translating to
	protein, and computing pairwise alignments and edit distances.

	Remote database lookup (package eutils): querying NCBI's Entrez
	E-utilities and picking fields out of the returned XML.

	Foreign-language interop (package pymap): rendering an interactive
	map by invoking an embedded Python script that drives the folium
	library.

	The demos are run in order by cmd/scitour, the way the article
	presents them.
*/
package scitour
