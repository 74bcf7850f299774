package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "github.com/billfeed/billfeed/gen/ent",
			Schema:  "ent/schema",
		},
		// row-level FOR UPDATE locks for the ledger deduction path
		entc.FeatureNames("sql/lock"),
	)
	if err != nil {
		log.Fatal(err)
	}
}
