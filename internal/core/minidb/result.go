package minidb

// StatementResult is the value Execute returns. Which fields are populated
// depends on the statement kind: Message for CREATE TABLE, RowID for INSERT,
// Columns and Rows for SELECT, RowsAffected for UPDATE and DELETE.
type StatementResult struct {
	Message      string
	RowID        uint64
	Columns      []string
	Rows         []Row
	RowsAffected int
}
