package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"dairyportal/internal/config"
	"dairyportal/internal/db"
	"dairyportal/internal/importer"
	"dairyportal/internal/repository/collection"
	"dairyportal/internal/repository/farmer"
)

func main() {
	var (
		filePath    string
		farmerEmail string
	)
	flag.StringVar(&filePath, "file", "", "Path to milk collection CSV export")
	flag.StringVar(&farmerEmail, "farmer", "", "Email of the farmer to import for")
	flag.Parse()

	if filePath == "" || farmerEmail == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.FromEnv()
	ctx := context.Background()

	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		log.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	account, err := farmer.NewPostgres(pool, nil).GetByEmail(ctx, farmerEmail)
	if err != nil {
		log.Fatalf("lookup farmer %q: %v", farmerEmail, err)
	}

	f, err := os.Open(filePath)
	if err != nil {
		log.Fatalf("open file: %v", err)
	}
	defer f.Close()

	imp := importer.NewCSVImporter(f, collection.NewPostgres(pool, nil), account.Farmer.ID)

	start := time.Now()
	count, err := imp.Run(ctx)
	if err != nil {
		log.Fatalf("import failed: %v", err)
	}

	fmt.Printf("Imported %d collection records for %s in %s\n", count, farmerEmail, time.Since(start).Truncate(time.Millisecond))
}
