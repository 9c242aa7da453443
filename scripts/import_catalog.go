// import_catalog.go — standalone script to load a cars CSV into the Postgres
// catalog table that motorwala's postgres source reads.
//
// Usage:
//
//	go run scripts/import_catalog.go -csv data/cars.csv -db postgres://localhost/motorwala -table cars
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

var identPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

func main() {
	csvPath := flag.String("csv", "data/cars.csv", "path to cars CSV")
	dbURL := flag.String("db", os.Getenv("MOTORWALA_DATABASE_URL"), "Postgres URL")
	table := flag.String("table", "cars", "target table name")
	drop := flag.Bool("drop", false, "drop and recreate the table first")
	flag.Parse()

	if !identPattern.MatchString(*table) {
		log.Fatalf("invalid table name %q", *table)
	}

	f, err := os.Open(*csvPath)
	if err != nil {
		log.Fatalf("open csv: %v", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		log.Fatalf("parse csv: %v", err)
	}
	if len(records) < 1 {
		log.Fatal("csv has no header row")
	}

	var columns []string
	var keep []int
	for j, h := range records[0] {
		name := strings.ToLower(strings.TrimSpace(h))
		name = strings.ReplaceAll(name, " ", "_")
		if identPattern.MatchString(name) {
			columns = append(columns, name)
			keep = append(keep, j)
		}
	}
	if len(columns) == 0 {
		log.Fatal("no usable columns in header")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, *dbURL)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer pool.Close()

	if *drop {
		if _, err := pool.Exec(ctx, "DROP TABLE IF EXISTS "+*table); err != nil {
			log.Fatalf("drop table: %v", err)
		}
	}

	defs := make([]string, len(columns))
	for i, c := range columns {
		defs[i] = c + " text"
	}
	createSQL := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", *table, strings.Join(defs, ", "))
	if _, err := pool.Exec(ctx, createSQL); err != nil {
		log.Fatalf("create table: %v", err)
	}

	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	insertSQL := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		*table, strings.Join(columns, ", "), strings.Join(placeholders, ", "))

	inserted := 0
	for _, rec := range records[1:] {
		args := make([]interface{}, len(keep))
		for i, j := range keep {
			if j < len(rec) && strings.TrimSpace(rec[j]) != "" {
				args[i] = strings.TrimSpace(rec[j])
			}
		}
		if _, err := pool.Exec(ctx, insertSQL, args...); err != nil {
			log.Fatalf("insert row %d: %v", inserted+1, err)
		}
		inserted++
	}

	fmt.Printf("imported %d cars into %s (%d columns)\n", inserted, *table, len(columns))
}
