package duck

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	_ "github.com/marcboeker/go-duckdb"
	"github.com/pkg/errors"

	nt "gridmenu/entity"
)

const table = "products"

// Duck is an in-memory grid store.
type Duck struct {
	db     *sql.DB
	ctx    context.Context
	logger nt.Logger
	filter nt.Filter
	sorts  []nt.Sort
	name   string
}

func New(ctx context.Context, lgr nt.Logger) (dk *Duck, err error) {

	db, err := sql.Open("duckdb", "")
	if err != nil {
		err = errors.Wrapf(err, "failed to open memo duck")
		return
	}

	dk = &Duck{
		db:     db,
		sorts:  []nt.Sort{},
		ctx:    ctx,
		logger: lgr,
	}

	return
}

func (dk *Duck) Close() {
	dk.db.Close()
}

// Product is one row of the dataset.
type Product struct {
	Id                int64   `json:"id"`
	Name              string  `json:"name"`
	CreatedUserName   string  `json:"created_user_name"`
	ProductStatusName string  `json:"product_status_name"`
	ItemTypeName      string  `json:"item_type_name"`
	Price             float64 `json:"price"`
	UpdatedAt         string  `json:"updated_at"`
}

// Load replaces the dataset with products from a json array
func (dk *Duck) Load(ctx context.Context, name string, data []byte) (err error) {

	var products []Product
	err = json.Unmarshal(data, &products)
	if err != nil {
		err = errors.Wrapf(err, "failed to unmarshal products from %s", name)
		return
	}

	err = createTable(ctx, dk.db)
	if err != nil {
		return
	}

	err = insertProducts(ctx, dk.db, products)
	if err != nil {
		return
	}

	dk.name = name
	dk.logger.Info(ctx, "loaded products", "name", name, "count", len(products))
	return
}

// Name returns the name of the loaded dataset
func (dk *Duck) Name() string {
	return dk.name
}

// SetView Filter and Sort(s)
func (dk *Duck) SetView(filter nt.Filter, sorts []nt.Sort) (err error) {
	dk.filter = filter
	dk.sorts = sorts

	dk.logger.Debug(dk.ctx, "set view", "where", whereClause(filter), "order", orderClause(sorts))
	return nil
}

// GetView fields and count
func (dk *Duck) GetView() (fields []nt.Field, count int, err error) {

	fields, err = getFields(dk.db)
	if err != nil {
		return
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s %s", table, whereClause(dk.filter))
	dk.logger.Debug(dk.ctx, "counting", "query", countQuery)
	err = dk.db.QueryRow(countQuery).Scan(&count)
	if err != nil {
		err = errors.Wrapf(err, "failed to count %s", table)
		return
	}

	return
}

// GetPage of lines
func (dk *Duck) GetPage(offset, size int) (lines []nt.Line, err error) {

	if size <= 0 {
		return
	}

	query := fmt.Sprintf("SELECT * FROM %s %s %s LIMIT %d OFFSET %d",
		table, whereClause(dk.filter), orderClause(dk.sorts), size, offset)

	dk.logger.Debug(dk.ctx, "getting page", "query", query)
	rows, err := dk.db.Query(query)
	if err != nil {
		err = errors.Wrapf(err, "failed to query %s", table)
		return
	}
	defer rows.Close()

	count, err := columnCount(rows)
	if err != nil {
		return
	}

	for rows.Next() {
		var vals []any
		vals, err = scanRow(rows, count)
		if err != nil {
			err = errors.Wrapf(err, "failed to scan row")
			return
		}

		values := make([]nt.Value, count)
		for i, val := range vals {
			values[i] = nt.Value{Raw: val}
		}

		// first column is the id
		lines = append(lines, nt.Line{
			Id:     values[0].String(),
			Values: values,
		})
	}

	err = rows.Err()
	err = errors.Wrapf(err, "error iterating rows")
	return
}

// Distinct returns the sorted distinct values of field
func (dk *Duck) Distinct(field string) (values []string, err error) {

	query := fmt.Sprintf("SELECT DISTINCT CAST(%[1]s AS VARCHAR) AS v FROM %[2]s WHERE %[1]s IS NOT NULL ORDER BY v",
		ident(field), table)

	dk.logger.Debug(dk.ctx, "listing distinct", "query", query)
	rows, err := dk.db.Query(query)
	if err != nil {
		err = errors.Wrapf(err, "failed to query distinct %s", field)
		return
	}
	defer rows.Close()

	for rows.Next() {
		var val string
		err = rows.Scan(&val)
		if err != nil {
			err = errors.Wrapf(err, "failed to scan distinct %s", field)
			return
		}
		values = append(values, val)
	}

	err = rows.Err()
	err = errors.Wrapf(err, "error iterating distinct rows")
	return
}

// unexported

func createTable(ctx context.Context, db *sql.DB) (err error) {

	_, err = db.ExecContext(ctx, fmt.Sprintf(`
		CREATE OR REPLACE TABLE %s (
			id BIGINT,
			name VARCHAR,
			created_user_name VARCHAR,
			product_status_name VARCHAR,
			item_type_name VARCHAR,
			price DOUBLE,
			updated_at TIMESTAMP
		)
	`, table))
	err = errors.Wrapf(err, "failed to create table")
	return
}

func insertProducts(ctx context.Context, db *sql.DB, products []Product) (err error) {

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		err = errors.Wrapf(err, "failed to begin tx")
		return
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(
		"INSERT INTO %s VALUES (?, ?, ?, ?, ?, ?, CAST(NULLIF(?, '') AS TIMESTAMP))", table))
	if err != nil {
		err = errors.Wrapf(err, "failed to prepare insert")
		return
	}
	defer stmt.Close()

	for _, pr := range products {
		_, err = stmt.ExecContext(ctx,
			pr.Id, pr.Name, pr.CreatedUserName, pr.ProductStatusName,
			pr.ItemTypeName, pr.Price, pr.UpdatedAt)
		if err != nil {
			err = errors.Wrapf(err, "failed to insert product %d", pr.Id)
			return
		}
	}

	err = tx.Commit()
	err = errors.Wrapf(err, "failed to commit products")
	return
}

func getFields(db *sql.DB) (fields []nt.Field, err error) {

	rows, err := db.Query(`
		SELECT column_name, data_type
		FROM information_schema.columns
		WHERE table_name = ?
		ORDER BY ordinal_position
	`, table)
	if err != nil {
		err = errors.Wrapf(err, "failed to query schema")
		return
	}
	defer rows.Close()

	for rows.Next() {
		var field nt.Field
		if err = rows.Scan(&field.Name, &field.Type); err != nil {
			err = errors.Wrapf(err, "failed to scan field")
			return
		}
		fields = append(fields, field)
	}

	err = rows.Err()
	err = errors.Wrapf(err, "error iterating schema")
	return
}

func columnCount(rows *sql.Rows) (int, error) {
	cols, err := rows.Columns()
	if err != nil {
		return 0, errors.Wrapf(err, "failed to get cols from query rows")
	}
	return len(cols), nil
}

func scanRow(rows *sql.Rows, columnCount int) ([]any, error) {
	vals := make([]any, columnCount)
	ptrs := make([]any, columnCount)
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	err := rows.Scan(ptrs...)
	return vals, err
}

func orderClause(sorts []nt.Sort) string {

	terms := []string{}
	for _, srt := range sorts {
		dir := "ASC"
		if srt.Desc {
			dir = "DESC"
		}
		terms = append(terms, fmt.Sprintf("%s %s", ident(srt.Field), dir))
	}
	terms = append(terms, "rowid")

	return "ORDER BY " + strings.Join(terms, ", ")
}

// ident quotes an identifier
func ident(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
