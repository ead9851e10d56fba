// Copyright 2026 the Scitour authors. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package bio

import (
	"context"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grailbio/testutil"
)

func TestReadFASTA(t *testing.T) {
	f, err := os.Open(filepath.Join("testdata", "sample.fasta"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	seqs, err := ReadFASTA(f)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(seqs), 2; got != want {
		t.Fatalf("got %d sequences, want %d", got, want)
	}
	if got, want := seqs[0].ID, "seq1"; got != want {
		t.Errorf("got ID %q, want %q", got, want)
	}
	if got, want := strings.ToUpper(fmt.Sprint(seqs[0].Seq)), "ATGGCGTACGCTTGA"; got != want {
		t.Errorf("got sequence %q, want %q", got, want)
	}
}

func TestReadFASTAEmpty(t *testing.T) {
	if _, err := ReadFASTA(strings.NewReader("")); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestSubsequence(t *testing.T) {
	s := NewDNA("s", "ATGGCGTACGCT")
	sub, err := Subsequence(s, 3, 6)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := fmt.Sprint(sub.Seq), "GCG"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	for _, tc := range []struct{ start, end int }{{-1, 3}, {0, 13}, {5, 2}} {
		if _, err := Subsequence(s, tc.start, tc.end); err == nil {
			t.Errorf("expected error for bounds [%d, %d)", tc.start, tc.end)
		}
	}
}

func TestTranscribe(t *testing.T) {
	rna, err := Transcribe(NewDNA("s", "ATGGCGTAA"))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := fmt.Sprint(rna.Seq), "AUGGCGUAA"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if _, err := Transcribe(NewDNA("s", "ATGNCG")); err == nil {
		t.Error("expected error for non-DNA letter")
	}
}

func TestTranslate(t *testing.T) {
	rna, err := Transcribe(NewDNA("s", "ATGGCGTACTGA"))
	if err != nil {
		t.Fatal(err)
	}
	protein, err := Translate(rna)
	if err != nil {
		t.Fatal(err)
	}
	// Translation stops at the UGA stop codon.
	if got, want := fmt.Sprint(protein.Seq), "MAY"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if _, err := Translate(NewDNA("s", "AU")); err == nil {
		t.Error("expected error for sequence shorter than a codon")
	}
}

func TestDistance(t *testing.T) {
	for _, tc := range []struct {
		a, b string
		want int
	}{
		{"ATGGCGTACGCTTGA", "ATGGCGTACGCTTGA", 0},
		{"ATGGCGTACGCTTGA", "ATGGCGTTCGCTTGA", 1},
		{"ATGGCG", "ATGGCGTAC", 3},
		{"", "ACGT", 4},
		{"GATTACA", "GCATGCU", 4},
	} {
		if got := Distance(NewDNA("a", tc.a), NewDNA("b", tc.b)); got != tc.want {
			t.Errorf("Distance(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
	// Distance is symmetric.
	a, b := NewDNA("a", "ATGGCG"), NewDNA("b", "ATGGCGTAC")
	if Distance(a, b) != Distance(b, a) {
		t.Error("distance is not symmetric")
	}
}

func TestAlign(t *testing.T) {
	a, b, err := Align(NewDNA("a", "ATGGCGTACGCT"), NewDNA("b", "ATGGCGGCT"))
	if err != nil {
		t.Fatal(err)
	}
	if len(a) != len(b) {
		t.Fatalf("aligned lengths differ: %q vs %q", a, b)
	}
	if !strings.Contains(b, "-") {
		t.Errorf("expected gaps in the shorter sequence's alignment: %q", b)
	}
}

func TestOpenFile(t *testing.T) {
	dir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	path := filepath.Join(dir, "test.fasta")
	const body = ">s\nACGT\n"
	if err := ioutil.WriteFile(path, []byte(body), 0666); err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	rc, err := Open(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	defer rc.Close()
	got, err := ioutil.ReadAll(rc)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != body {
		t.Errorf("got %q, want %q", got, body)
	}
}

func TestOpenHTTP(t *testing.T) {
	const body = ">s\nACGT\n"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	defer srv.Close()
	ctx := context.Background()
	rc, err := Open(ctx, srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	defer rc.Close()
	got, err := ioutil.ReadAll(rc)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != body {
		t.Errorf("got %q, want %q", got, body)
	}
	srv404 := httptest.NewServer(http.NotFoundHandler())
	defer srv404.Close()
	if _, err := Open(ctx, srv404.URL); err == nil {
		t.Error("expected error for 404")
	}
}
