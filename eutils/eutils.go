// Copyright 2026 the Scitour authors. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package eutils looks up records in NCBI's Entrez databases through
// the E-utilities service, wrapping the biogo client. Queries return
// the handful of fields the tour prints; everything else in the
// service's XML is ignored.
//
// NCBI asks that clients identify themselves. Callers should set
// Email before issuing queries.
package eutils

import (
	"encoding/xml"
	"io"

	"github.com/biogo/ncbi/entrez"
	"github.com/grailbio/base/errors"
)

// Tool identifies this client to the E-utilities service.
const Tool = "scitour"

// Email identifies the querying user to the E-utilities service, per
// NCBI's usage policy.
var Email = ""

// A Record holds the fields of interest from an Entrez sequence
// record, as returned by EFetch in TinySeq XML form.
type Record struct {
	Accession string `xml:"TSeq_accver"`
	Defline   string `xml:"TSeq_defline"`
	Organism  string `xml:"TSeq_orgname"`
	Length    int    `xml:"TSeq_length"`
	Sequence  string `xml:"TSeq_sequence"`
}

// tinySeqSet mirrors the TSeqSet document element of EFetch's TinySeq
// XML output.
type tinySeqSet struct {
	XMLName xml.Name `xml:"TSeqSet"`
	Seqs    []Record `xml:"TSeq"`
}

// Search searches the named Entrez database for the query term and
// returns up to retmax record identifiers.
func Search(db, query string, retmax int) ([]int, error) {
	s, err := entrez.DoSearch(db, query, &entrez.Parameters{RetMax: retmax}, nil, Tool, Email)
	if err != nil {
		return nil, errors.E("eutils.Search", db, query, errors.Net, err)
	}
	return s.IdList, nil
}

// Fetch retrieves the named records from an Entrez sequence database
// and parses the fields of interest from the service's XML.
func Fetch(db string, ids ...int) ([]Record, error) {
	if len(ids) == 0 {
		return nil, errors.E("eutils.Fetch", errors.Invalid, "no record identifiers")
	}
	p := &entrez.Parameters{RetMode: "xml", RetType: "fasta"}
	rc, err := entrez.Fetch(db, p, Tool, Email, nil, ids...)
	if err != nil {
		return nil, errors.E("eutils.Fetch", db, errors.Net, err)
	}
	defer rc.Close()
	recs, err := decodeRecords(rc)
	if err != nil {
		return nil, errors.E("eutils.Fetch", db, err)
	}
	return recs, nil
}

// DecodeRecords parses TinySeq XML into records.
func decodeRecords(r io.Reader) ([]Record, error) {
	var set tinySeqSet
	if err := xml.NewDecoder(r).Decode(&set); err != nil {
		return nil, err
	}
	return set.Seqs, nil
}
