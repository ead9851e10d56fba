// Copyright 2026 the Scitour authors. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package bio wraps the biogo toolkit for the tour's sequence
// analysis: reading FASTA inputs, extracting subsequences,
// transcribing DNA to RNA, translating RNA to protein, and aligning
// sequence pairs. Sequences are biogo linear sequences over gapped
// alphabets so that they can be fed directly to the aligners.
package bio

import (
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/grailbio/base/errors"
)

// ReadFASTA reads all DNA sequences from the FASTA-formatted input.
func ReadFASTA(r io.Reader) ([]*linear.Seq, error) {
	tmpl := linear.NewSeq("", nil, alphabet.DNAgapped)
	sc := seqio.NewScanner(fasta.NewReader(r, tmpl))
	var seqs []*linear.Seq
	for sc.Next() {
		seqs = append(seqs, sc.Seq().(*linear.Seq))
	}
	if err := sc.Error(); err != nil {
		return nil, errors.E("bio.ReadFASTA", err)
	}
	if len(seqs) == 0 {
		return nil, errors.E("bio.ReadFASTA", errors.NotExist, "no sequences in input")
	}
	return seqs, nil
}

// NewDNA returns a DNA sequence with the given identifier and
// letters.
func NewDNA(id, s string) *linear.Seq {
	return linear.NewSeq(id, alphabet.BytesToLetters([]byte(s)), alphabet.DNAgapped)
}

// Subsequence returns the half-open subsequence [start, end) of s as
// a new sequence.
func Subsequence(s *linear.Seq, start, end int) (*linear.Seq, error) {
	if start < 0 || end > len(s.Seq) || start > end {
		return nil, errors.E("bio.Subsequence", errors.Invalid, "bounds out of range")
	}
	sub := linear.NewSeq(s.ID, append([]alphabet.Letter(nil), s.Seq[start:end]...), s.Alpha)
	sub.Desc = s.Desc
	return sub, nil
}
