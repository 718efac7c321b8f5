// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// chrom2gff writes the spans of a .chrom table on stdin as GFF features
// on stdout.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/kortschak/gxf2chrom/chrom"
	"github.com/kortschak/gxf2chrom/span"
)

var (
	source  = flag.String("source", "gxf2chrom", "specify the GFF source field")
	feature = flag.String("feature", "CDS_span", "specify the GFF feature field")
	tag     = flag.String("tag", "protein_id", "specify the attribute tag holding the identifier")
	region  = flag.String("region", "", "only write spans overlapping region (chr:start-end, 1-based)")
)

func main() {
	flag.Parse()
	if *tag == "" {
		flag.Usage()
		os.Exit(1)
	}

	t, err := chrom.ReadTable(os.Stdin)
	if err != nil {
		log.Fatalf("failed to read chrom table: %v", err)
	}
	if *region != "" {
		r, err := span.ParseRegion(*region)
		if err != nil {
			log.Fatal(err)
		}
		t, err = t.Within(r)
		if err != nil {
			log.Fatalf("failed to index spans: %v", err)
		}
	}

	g := chrom.GFF{Source: *source, Feature: *feature, Tag: *tag}
	err = g.Write(os.Stdout, t)
	if err != nil {
		log.Fatalf("failed to write feature: %v", err)
	}
}
