package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createAddressTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE addresses (
		id TEXT PRIMARY KEY,
		street TEXT NOT NULL,
		number TEXT NOT NULL,
		city TEXT NOT NULL,
		state TEXT NOT NULL,
		postal_code TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		active BOOLEAN NOT NULL DEFAULT 1,
		roles TEXT NOT NULL,
		address_id TEXT UNIQUE,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createAccountTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE accounts (
		id TEXT PRIMARY KEY,
		agency TEXT NOT NULL,
		number TEXT NOT NULL UNIQUE,
		digit TEXT NOT NULL,
		balance TEXT NOT NULL,
		saved_amount TEXT NOT NULL,
		account_yield TEXT NOT NULL,
		user_id TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createCardTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE cards (
		id TEXT PRIMARY KEY,
		number TEXT NOT NULL UNIQUE,
		expiration_date DATETIME NOT NULL,
		cvv TEXT NOT NULL,
		"limit" TEXT NOT NULL,
		active BOOLEAN NOT NULL,
		account_id TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createInvoiceTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE invoices (
		id TEXT PRIMARY KEY,
		closing_date DATETIME NOT NULL,
		due_date DATETIME NOT NULL,
		total_amount TEXT NOT NULL,
		paid BOOLEAN NOT NULL,
		card_id TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createLoanTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE loans (
		id TEXT PRIMARY KEY,
		contract_date DATETIME NOT NULL,
		amount TEXT NOT NULL,
		interest_rate TEXT NOT NULL,
		outstanding_balance TEXT NOT NULL,
		user_id TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}
