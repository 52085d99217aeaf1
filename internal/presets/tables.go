package presets

// TableKind identifies one of the three fixed table schemas.
type TableKind string

const (
	TableSales    TableKind = "sales"
	TableUsers    TableKind = "users"
	TableProducts TableKind = "products"
)

// TableOrder is the fixed fill order used when a request names a count
// but not enough distinct kinds (spec §4.5 rule 2).
var TableOrder = []TableKind{TableSales, TableUsers, TableProducts}

// TableSchema describes one table preset: its column headers and its
// fixed sample rows. Row cells are text/number/bool per spec §3.
type TableSchema struct {
	Columns []string
	Rows    [][]any
}

// Tables maps each kind to its schema.
var Tables = map[TableKind]TableSchema{
	TableSales: {
		Columns: []string{"Name", "Sales", "Region"},
		Rows: [][]any{
			{"Avery Chen", 128500.50, "West"},
			{"Priya Natarajan", 97250.00, "East"},
			{"Mateo Alvarez", 154300.75, "Central"},
			{"Ines Dubois", 88120.25, "South"},
			{"Kwame Boateng", 112990.00, "North"},
		},
	},
	TableUsers: {
		Columns: []string{"User", "Email", "Status", "Role"},
		Rows: [][]any{
			{"jchen", "jchen@example.com", "active", "admin"},
			{"pnat", "pnat@example.com", "active", "editor"},
			{"malvarez", "malvarez@example.com", "suspended", "viewer"},
			{"idubois", "idubois@example.com", "active", "editor"},
			{"kboateng", "kboateng@example.com", "pending", "viewer"},
		},
	},
	TableProducts: {
		Columns: []string{"Product", "Price", "Stock", "Category"},
		Rows: [][]any{
			{"Trail Runner Jacket", 89.99, 240, "Outerwear"},
			{"Insulated Bottle 750ml", 24.50, 1120, "Accessories"},
			{"Carbon Trekking Pole", 64.00, 310, "Gear"},
			{"Merino Base Layer", 54.99, 475, "Apparel"},
			{"Compact Camp Stove", 72.25, 160, "Gear"},
		},
	},
}

// RowAt returns the row at index i for kind, and whether it exists.
func RowAt(kind TableKind, i int) ([]any, bool) {
	schema := Tables[kind]
	if i < 0 || i >= len(schema.Rows) {
		return nil, false
	}
	return schema.Rows[i], true
}

// RowCount returns how many preset rows a kind has.
func RowCount(kind TableKind) int {
	return len(Tables[kind].Rows)
}
