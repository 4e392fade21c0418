package videochip

import "fmt"

const (
	BGMaxColumns = 64
	BGMaxRows    = 64
)

// Cell is one background map entry.
type Cell struct {
	ID    TileID
	Flags TileFlags
}

// BGMap is a grid of background cells. Storage is sized for the largest map
// so resizing or resetting never allocates.
type BGMap struct {
	columns uint16
	rows    uint16
	cells   [BGMaxColumns * BGMaxRows]Cell
}

// NewBGMap returns an empty map of the given size in tiles.
func NewBGMap(columns, rows uint16) *BGMap {
	m := &BGMap{}
	m.init(columns, rows)
	return m
}

func (m *BGMap) init(columns, rows uint16) {
	if columns == 0 || columns > BGMaxColumns || rows == 0 || rows > BGMaxRows {
		panic(fmt.Sprintf("videochip: invalid BG map size %dx%d, max is %dx%d", columns, rows, BGMaxColumns, BGMaxRows))
	}
	m.columns = columns
	m.rows = rows
	m.Reset()
}

func (m *BGMap) Columns() uint16 { return m.columns }

func (m *BGMap) Rows() uint16 { return m.rows }

// Reset empties every cell.
func (m *BGMap) Reset() {
	m.Fill(Cell{ID: NoTile})
}

// Fill stores c in every cell.
func (m *BGMap) Fill(c Cell) {
	for i := range m.cells {
		m.cells[i] = c
	}
}

func (m *BGMap) index(col, row uint16) int {
	if col >= m.columns || row >= m.rows {
		panic(fmt.Sprintf("videochip: BG cell (%d, %d) outside %dx%d map", col, row, m.columns, m.rows))
	}
	return int(row)*int(m.columns) + int(col)
}

func (m *BGMap) Set(col, row uint16, c Cell) {
	m.cells[m.index(col, row)] = c
}

func (m *BGMap) Get(col, row uint16) Cell {
	return m.cells[m.index(col, row)]
}

// Sample finds the cell under the map pixel px, py and the position inside
// its tile. With wrap set the map repeats in both directions; otherwise pixels
// outside the map report ok == false.
func (m *BGMap) Sample(px, py int, wrap bool) (c Cell, x, y uint8, ok bool) {
	col, row := px>>tileShift, py>>tileShift
	x, y = uint8(px&tileMask), uint8(py&tileMask)

	cols, rows := int(m.columns), int(m.rows)
	if wrap {
		col = (col%cols + cols) % cols
		row = (row%rows + rows) % rows
	} else if col < 0 || col >= cols || row < 0 || row >= rows {
		return Cell{}, 0, 0, false
	}
	return m.cells[row*cols+col], x, y, true
}
