package inventory

// Column names expected in the inventory header row.
const (
	ColumnFullName     = "FullName"
	ColumnLength       = "Length"
	ColumnCreationTime = "CreationTime"
	ColumnExtension    = "Extension"
)

var requiredColumns = []string{
	ColumnFullName,
	ColumnLength,
	ColumnCreationTime,
	ColumnExtension,
}

// Record is a single row of a file inventory.
// CreationTime is kept as read; it is never parsed.
type Record struct {
	FullName     string
	Length       int64
	CreationTime string
	Extension    string
}
