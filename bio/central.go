// Copyright 2026 the Scitour authors. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package bio

import (
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/seq/linear"
	"github.com/grailbio/base/errors"
)

// codons is the standard genetic code, keyed by upper-case RNA codon.
// Stop codons translate to '*'.
var codons = map[string]alphabet.Letter{
	"UUU": 'F', "UUC": 'F', "UUA": 'L', "UUG": 'L',
	"UCU": 'S', "UCC": 'S', "UCA": 'S', "UCG": 'S',
	"UAU": 'Y', "UAC": 'Y', "UAA": '*', "UAG": '*',
	"UGU": 'C', "UGC": 'C', "UGA": '*', "UGG": 'W',
	"CUU": 'L', "CUC": 'L', "CUA": 'L', "CUG": 'L',
	"CCU": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
	"CAU": 'H', "CAC": 'H', "CAA": 'Q', "CAG": 'Q',
	"CGU": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R',
	"AUU": 'I', "AUC": 'I', "AUA": 'I', "AUG": 'M',
	"ACU": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
	"AAU": 'N', "AAC": 'N', "AAA": 'K', "AAG": 'K',
	"AGU": 'S', "AGC": 'S', "AGA": 'R', "AGG": 'R',
	"GUU": 'V', "GUC": 'V', "GUA": 'V', "GUG": 'V',
	"GCU": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',
	"GAU": 'D', "GAC": 'D', "GAA": 'E', "GAG": 'E',
	"GGU": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
}

// Transcribe transcribes a DNA sequence to RNA, replacing thymine
// with uracil. Letters outside the DNA alphabet are rejected.
func Transcribe(dna *linear.Seq) (*linear.Seq, error) {
	rna := make([]alphabet.Letter, len(dna.Seq))
	for i, l := range dna.Seq {
		switch l {
		case 't':
			rna[i] = 'u'
		case 'T':
			rna[i] = 'U'
		case 'a', 'c', 'g', 'A', 'C', 'G':
			rna[i] = l
		default:
			return nil, errors.E("bio.Transcribe", errors.Invalid, "not a DNA letter: "+string(rune(l)))
		}
	}
	s := linear.NewSeq(dna.ID, rna, alphabet.RNAgapped)
	s.Desc = dna.Desc
	return s, nil
}

// Translate translates an RNA sequence to protein under the standard
// genetic code, beginning at the first letter and stopping at the
// first stop codon (exclusive) or at the last whole codon. The
// sequence must contain at least one whole codon.
func Translate(rna *linear.Seq) (*linear.Seq, error) {
	if len(rna.Seq) < 3 {
		return nil, errors.E("bio.Translate", errors.Invalid, "sequence shorter than one codon")
	}
	var protein []alphabet.Letter
	for i := 0; i+3 <= len(rna.Seq); i += 3 {
		codon := strings.ToUpper(alphabet.Letters(rna.Seq[i : i+3]).String())
		aa, ok := codons[codon]
		if !ok {
			return nil, errors.E("bio.Translate", errors.Invalid, "not an RNA codon: "+codon)
		}
		if aa == '*' {
			break
		}
		protein = append(protein, aa)
	}
	s := linear.NewSeq(rna.ID, protein, alphabet.Protein)
	s.Desc = rna.Desc
	return s, nil
}
