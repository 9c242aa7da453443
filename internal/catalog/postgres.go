package catalog

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSource loads the catalog from a Postgres table. The column set is
// taken from the table itself, so schema drift in the catalog never requires
// a code change here.
type PostgresSource struct {
	pool  *pgxpool.Pool
	table string
}

func NewPostgresSource(ctx context.Context, databaseURL, table string) (*PostgresSource, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if table == "" {
		table = "cars"
	}
	return &PostgresSource{pool: pool, table: table}, nil
}

func (s *PostgresSource) Load(ctx context.Context) (*Table, error) {
	rows, err := s.pool.Query(ctx, "SELECT * FROM "+s.table)
	if err != nil {
		return nil, fmt.Errorf("query catalog table %s: %w", s.table, err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	columns := make([]string, len(fields))
	for i, f := range fields {
		columns[i] = f.Name
	}

	var records [][]string
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("read catalog row: %w", err)
		}
		rec := make([]string, len(values))
		for i, v := range values {
			rec[i] = cellString(v)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan catalog table %s: %w", s.table, err)
	}

	return NewTable(columns, records), nil
}

func (s *PostgresSource) Close() error {
	s.pool.Close()
	return nil
}

// cellString renders a database value as a raw table cell. NULL becomes the
// empty (missing) cell.
func cellString(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case bool:
		if x {
			return "1"
		}
		return "0"
	case int64:
		return strconv.FormatInt(x, 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case time.Time:
		return x.Format(time.RFC3339)
	default:
		return fmt.Sprint(x)
	}
}
