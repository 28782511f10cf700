package data

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"sales-insights/internal/model"

	_ "github.com/go-sql-driver/mysql"
)

var tableNameRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// Open opens a MySQL/MariaDB connection. DSNs in mariadb:// or mysql://
// URL form are normalized to the driver format.
func Open(dsn string) (*sql.DB, error) {
	mysqlDSN, err := toMySQLDSN(dsn)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("mysql", mysqlDSN)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)
	return db, nil
}

func toMySQLDSN(dsn string) (string, error) {
	if strings.HasPrefix(dsn, "mariadb://") || strings.HasPrefix(dsn, "mysql://") {
		u, err := url.Parse(dsn)
		if err != nil {
			return "", fmt.Errorf("parse dsn: %w", err)
		}
		user := ""
		pass := ""
		if u.User != nil {
			user = u.User.Username()
			pw, _ := u.User.Password()
			pass = pw
		}
		host := u.Host
		db := strings.TrimPrefix(u.Path, "/")
		if user == "" || host == "" || db == "" {
			return "", fmt.Errorf("incomplete dsn (user/host/db)")
		}
		return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&interpolateParams=true",
			user, pass, host, db), nil
	}
	return dsn, nil
}

// LoadOrdersMySQL reads order records from a table. The table schema is
// probed with a zero-row query first so missing columns surface as a
// SchemaError before any data is scanned.
func LoadOrdersMySQL(ctx context.Context, db *sql.DB, table string) ([]model.OrderRecord, error) {
	if !tableNameRe.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}

	if err := probeSchema(ctx, db, table); err != nil {
		return nil, err
	}

	q := fmt.Sprintf(`
		SELECT product, channel, region, unit_price, discount_pct, revenue, cost
		FROM %s
	`, table)
	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	var records []model.OrderRecord
	for rows.Next() {
		var rec model.OrderRecord
		if err := rows.Scan(
			&rec.Product, &rec.Channel, &rec.Region,
			&rec.UnitPrice, &rec.DiscountPct, &rec.Revenue, &rec.Cost,
		); err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func probeSchema(ctx context.Context, db *sql.DB, table string) error {
	rows, err := db.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s LIMIT 0", table))
	if err != nil {
		return fmt.Errorf("probe %s: %w", table, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return fmt.Errorf("probe %s columns: %w", table, err)
	}
	present := make(map[string]bool, len(cols))
	for _, c := range cols {
		present[strings.ToLower(c)] = true
	}
	return checkSchema(present)
}
