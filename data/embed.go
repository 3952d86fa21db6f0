package data

import (
	_ "embed"
)

// CopycatFormatName is the seeded format reserved for copycat variation A
const CopycatFormatName = "Copycat / Direct Response"

//go:embed seed/taxonomy.json
var SeedTaxonomy []byte
