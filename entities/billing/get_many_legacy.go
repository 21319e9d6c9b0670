package billing

import (
	"api/database"
	"api/schemas"
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/go-sql-driver/mysql"
)

func legacyInvoicesQuery(count int) string {
	placeholders := strings.TrimRight(strings.Repeat("?,", count), ",")
	return fmt.Sprintf(
		"SELECT id, nome_cliente, valor_cents, status, criado_em FROM %s WHERE id IN (%s)",
		database.MYSQL_TABLE_LEGACY_INVOICES,
		placeholders,
	)
}

// GetManyLegacy busca faturas do sistema antigo no MySQL, mantido somente
// para leitura durante a migração.
func GetManyLegacy(legacyIds []int64) ([]*schemas.InvoiceLegacy, error) {
	if len(legacyIds) == 0 {
		return nil, nil
	}

	mysqlURI := os.Getenv("MYSQL_URI")

	mysqlDB, err := sql.Open("mysql", mysqlURI)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MySQL: %w", err)
	}
	defer mysqlDB.Close()

	mysqlDB.SetConnMaxLifetime(database.MYSQL_CONN_MAX_LIFETIME)
	mysqlDB.SetMaxOpenConns(database.MYSQL_MAX_OPEN_CONNS)
	mysqlDB.SetMaxIdleConns(database.MYSQL_MAX_IDLE_CONNS)

	args := make([]any, len(legacyIds))
	for i, id := range legacyIds {
		args[i] = id
	}

	rows, err := mysqlDB.Query(legacyInvoicesQuery(len(legacyIds)), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query legacy invoices from MySQL: %w", err)
	}
	defer rows.Close()

	invoices := []*schemas.InvoiceLegacy{}
	for rows.Next() {
		invoice := &schemas.InvoiceLegacy{}
		err := rows.Scan(
			&invoice.ID,
			&invoice.NomeCliente,
			&invoice.ValorCents,
			&invoice.Status,
			&invoice.CriadoEm,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan legacy invoice row: %w", err)
		}
		invoices = append(invoices, invoice)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating legacy invoice rows: %w", err)
	}

	return invoices, nil
}
