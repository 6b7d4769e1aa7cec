package content

// ColumnCount is the fixed number of table columns.
const ColumnCount = 4

// Columns are the header labels, positionally aligned with Row.Cells.
type Columns [ColumnCount]string

// Row is one method entry in a section table.
type Row struct {
	Method      string `yaml:"method"`
	Description string `yaml:"description"`
	Example     string `yaml:"example"`
	Output      string `yaml:"output"`
}

// Cells returns the row fields in column order.
func (r Row) Cells() [ColumnCount]string {
	return [ColumnCount]string{r.Method, r.Description, r.Example, r.Output}
}

// Section is a titled table of rows. ID doubles as the in-page anchor.
type Section struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	NavLabel string `yaml:"nav_label"`
	Rows     []Row  `yaml:"rows"`
}

// RowKey identifies a row within its section.
func (s Section) RowKey(r Row) string {
	return s.ID + "-" + r.Method
}

// Model is the complete, read-only dataset.
type Model struct {
	Columns  Columns
	Sections []Section
}

// file is the on-disk shape of one dataset file.
type file struct {
	Columns  []string  `yaml:"columns"`
	Sections []Section `yaml:"sections"`
}
