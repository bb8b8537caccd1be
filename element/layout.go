package element

// Display-grid dimensions. Rows 1 through 7 are the main table, row 8 stays
// empty as the visual gap, and rows 9 and 10 hold the detached lanthanide and
// actinide series.
const (
	Columns = 18
	Rows    = 10

	LanthanideRow = 9
	ActinideRow   = 10
)

const (
	firstLanthanide = 57  // La
	lastLanthanide  = 71  // Lu
	firstActinide   = 89  // Ac
	lastActinide    = 103 // Lr
)

// GridPos is one display cell: column 1..Columns, row 1..Rows.
type GridPos struct {
	Col int
	Row int
}

// PosOf returns the display cell for an element. Main-table elements sit at
// (Group, Period); the two f-block series are carved out into the detached
// rows, columns 4 through 18, in atomic-number order.
func PosOf(e Element) GridPos {
	switch {
	case e.Number >= firstLanthanide && e.Number <= lastLanthanide:
		return GridPos{Col: e.Number - firstLanthanide + 4, Row: LanthanideRow}
	case e.Number >= firstActinide && e.Number <= lastActinide:
		return GridPos{Col: e.Number - firstActinide + 4, Row: ActinideRow}
	default:
		return GridPos{Col: e.Group, Row: e.Period}
	}
}

// TopOccupiedRow returns the topmost main-table row occupied in a display
// column, or 0 for a column with no main-table elements. Column index labels
// render just above this row.
func TopOccupiedRow(col int) int {
	top := 0
	for _, e := range catalog {
		p := PosOf(e)
		if p.Col != col || p.Row >= LanthanideRow {
			continue
		}
		if top == 0 || p.Row < top {
			top = p.Row
		}
	}
	return top
}
