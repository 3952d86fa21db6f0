package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/localnerve/swipefile/internal/config"
	"github.com/localnerve/swipefile/internal/database"
	"github.com/localnerve/swipefile/internal/logger"
)

// Prints the migrated schema. With no flags the models are migrated into a
// throwaway in-memory SQLite database; -env inspects the configured database.
func main() {
	useEnv := flag.Bool("env", false, "inspect the database configured by the environment")
	flag.Parse()

	cfg := &config.Config{DBType: "sqlite-pure", DBDatabase: "file:inspect?mode=memory&cache=shared", LogLevel: "silent"}
	if *useEnv {
		loaded, err := config.Load()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg = loaded
	}

	db, err := database.Connect(cfg, logger.Nop())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer database.Close(db)

	if !*useEnv {
		if err := database.AutoMigrate(db); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	tables, err := db.Migrator().GetTables()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for _, table := range tables {
		fmt.Printf("\n=== Table: %s ===\n", table)
		columns, err := db.Migrator().ColumnTypes(table)
		if err != nil {
			fmt.Printf("  error: %v\n", err)
			continue
		}
		for _, col := range columns {
			nullable, _ := col.Nullable()
			fmt.Printf("  %-24s %-16s null=%t\n", col.Name(), col.DatabaseTypeName(), nullable)
		}
		indexes, err := db.Migrator().GetIndexes(table)
		if err != nil {
			continue
		}
		for _, idx := range indexes {
			unique, _ := idx.Unique()
			fmt.Printf("  index %s %v unique=%t\n", idx.Name(), idx.Columns(), unique)
		}
	}
}
