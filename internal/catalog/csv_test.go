package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cars.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCSVSourceLoad(t *testing.T) {
	path := writeTempCSV(t, "brand, price_inr ,fuel_type\nAlpha,500000,Petrol\nBeta,,Diesel\n")
	src := NewCSVSource(path)
	defer src.Close()

	tab, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if tab.Len() != 2 {
		t.Fatalf("got %d rows, want 2", tab.Len())
	}
	if !tab.Has("price_inr") {
		t.Error("header whitespace should be trimmed")
	}
	if tab.Cell("fuel_type", 1) != "Diesel" {
		t.Errorf("fuel_type[1] = %q", tab.Cell("fuel_type", 1))
	}
	prices, _ := tab.Numeric("price_inr")
	if prices[1] != nil {
		t.Error("empty price must be missing")
	}
}

func TestCSVSourceErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := NewCSVSource(filepath.Join(t.TempDir(), "nope.csv")).Load(context.Background()); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeTempCSV(t, "")
		if _, err := NewCSVSource(path).Load(context.Background()); err == nil {
			t.Error("expected error for empty catalog")
		}
	})
}

func TestCSVSourceRaggedRows(t *testing.T) {
	path := writeTempCSV(t, "brand,price_inr\nAlpha,500000\nBeta\n")
	tab, err := NewCSVSource(path).Load(context.Background())
	if err != nil {
		t.Fatalf("ragged rows should load: %v", err)
	}
	if tab.Cell("price_inr", 1) != "" {
		t.Errorf("short row cell = %q, want empty", tab.Cell("price_inr", 1))
	}
}
