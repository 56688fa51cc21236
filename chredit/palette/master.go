package palette

import "image/color"

const (
	Rows    = 4
	Columns = 16

	// Size is the number of entries in the master color table.
	Size = Rows * Columns
)

// Master is the fixed 64 entry console color table, laid out as 4 rows of
// 16 columns. Index $0D-$0F, $1D-$1F, $2E-$2F and $3E-$3F are black.
var Master = [Size]color.RGBA{
	// Row 0
	{101, 101, 101, 0xFF}, // $00
	{3, 47, 103, 0xFF},    // $01
	{21, 35, 125, 0xFF},   // $02
	{60, 26, 122, 0xFF},   // $03
	{95, 18, 97, 0xFF},    // $04
	{114, 14, 55, 0xFF},   // $05
	{112, 16, 13, 0xFF},   // $06
	{89, 26, 5, 0xFF},     // $07
	{52, 40, 3, 0xFF},     // $08
	{13, 51, 3, 0xFF},     // $09
	{3, 59, 4, 0xFF},      // $0A
	{4, 60, 19, 0xFF},     // $0B
	{3, 56, 63, 0xFF},     // $0C
	{0, 0, 0, 0xFF},       // $0D
	{0, 0, 0, 0xFF},       // $0E
	{0, 0, 0, 0xFF},       // $0F

	// Row 1
	{174, 174, 174, 0xFF}, // $10
	{15, 99, 179, 0xFF},   // $11
	{64, 81, 208, 0xFF},   // $12
	{120, 65, 204, 0xFF},  // $13
	{167, 54, 169, 0xFF},  // $14
	{192, 52, 112, 0xFF},  // $15
	{189, 60, 48, 0xFF},   // $16
	{159, 74, 0, 0xFF},    // $17
	{109, 92, 0, 0xFF},    // $18
	{54, 109, 0, 0xFF},    // $19
	{7, 119, 4, 0xFF},     // $1A
	{0, 121, 61, 0xFF},    // $1B
	{0, 114, 125, 0xFF},   // $1C
	{0, 0, 0, 0xFF},       // $1D
	{0, 0, 0, 0xFF},       // $1E
	{0, 0, 0, 0xFF},       // $1F

	// Row 2
	{254, 254, 255, 0xFF}, // $20
	{93, 179, 255, 0xFF},  // $21
	{143, 161, 255, 0xFF}, // $22
	{200, 144, 255, 0xFF}, // $23
	{247, 133, 250, 0xFF}, // $24
	{255, 131, 192, 0xFF}, // $25
	{255, 138, 127, 0xFF}, // $26
	{239, 154, 73, 0xFF},  // $27
	{189, 172, 44, 0xFF},  // $28
	{133, 188, 47, 0xFF},  // $29
	{85, 199, 83, 0xFF},   // $2A
	{60, 201, 140, 0xFF},  // $2B
	{62, 194, 205, 0xFF},  // $2C
	{78, 78, 78, 0xFF},    // $2D
	{0, 0, 0, 0xFF},       // $2E
	{0, 0, 0, 0xFF},       // $2F

	// Row 3
	{254, 254, 255, 0xFF}, // $30
	{188, 223, 255, 0xFF}, // $31
	{209, 216, 255, 0xFF}, // $32
	{232, 209, 255, 0xFF}, // $33
	{251, 205, 253, 0xFF}, // $34
	{255, 204, 229, 0xFF}, // $35
	{255, 207, 202, 0xFF}, // $36
	{248, 213, 180, 0xFF}, // $37
	{228, 220, 168, 0xFF}, // $38
	{204, 227, 169, 0xFF}, // $39
	{185, 232, 184, 0xFF}, // $3A
	{174, 232, 208, 0xFF}, // $3B
	{175, 229, 234, 0xFF}, // $3C
	{182, 182, 182, 0xFF}, // $3D
	{0, 0, 0, 0xFF},       // $3E
	{0, 0, 0, 0xFF},       // $3F
}

// Color returns the master table entry for index. Indices past the table
// wrap onto it, matching the 6-bit index the hardware decodes.
func Color(index uint8) color.RGBA {
	return Master[index%Size]
}

// Cell returns the master table index at the given row and column.
func Cell(row, col int) uint8 {
	return uint8(row*Columns + col)
}
