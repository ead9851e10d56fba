// Copyright 2026 the Scitour authors. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package bio

import (
	"fmt"
	"strings"

	"github.com/biogo/biogo/align"
	"github.com/biogo/biogo/seq/linear"
	"github.com/grailbio/base/errors"
)

// nw scores a global Needleman-Wunsch alignment over the gapped DNA
// alphabet (-acgt): +2 for a match, -1 for a mismatch or a gap.
var nw = align.NW{
	{0, -1, -1, -1, -1},
	{-1, 2, -1, -1, -1},
	{-1, -1, 2, -1, -1},
	{-1, -1, -1, 2, -1},
	{-1, -1, -1, -1, 2},
}

// Align computes a global alignment of two DNA sequences and returns
// the aligned, gap-filled sequence texts.
func Align(a, b *linear.Seq) (string, string, error) {
	aln, err := nw.Align(a, b)
	if err != nil {
		return "", "", errors.E("bio.Align", err)
	}
	fa := align.Format(a, b, aln, '-')
	return fmt.Sprint(fa[0]), fmt.Sprint(fa[1]), nil
}

// Distance returns the edit distance between two sequences under a
// unit cost model: substitutions, insertions and deletions each cost
// one. Case is ignored. The toolkit's aligners maximize similarity
// scores, so the distance is computed directly with the standard
// dynamic program.
func Distance(a, b *linear.Seq) int {
	s := strings.ToUpper(fmt.Sprint(a.Seq))
	t := strings.ToUpper(fmt.Sprint(b.Seq))
	prev := make([]int, len(t)+1)
	curr := make([]int, len(t)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(s); i++ {
		curr[0] = i
		for j := 1; j <= len(t); j++ {
			cost := 1
			if s[i-1] == t[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j-1]+cost, min(prev[j]+1, curr[j-1]+1))
		}
		prev, curr = curr, prev
	}
	return prev[len(t)]
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
