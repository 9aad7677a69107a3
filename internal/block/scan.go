package block

// scanTables holds the sixteen 8x8 coefficient-scan permutations a Run or
// ScaledRun block selects between with its leading 4-bit pattern index.
// The scan patterns shipped with the original codec's data files are not
// reproduced here; this package substitutes the standard JPEG zig-zag
// order for index 0 and row/column/diagonal-reflected variants of it for
// the rest, which keeps every index a valid permutation of 0..63 without
// claiming to reproduce the original constants.
var scanTables [16][64]int

var zigzag8x8 = [64]int{
	0, 1, 8, 16, 9, 2, 3, 10,
	17, 24, 32, 25, 18, 11, 4, 5,
	12, 19, 26, 33, 40, 48, 41, 34,
	27, 20, 13, 6, 7, 14, 21, 28,
	35, 42, 49, 56, 57, 50, 43, 36,
	29, 22, 15, 23, 30, 37, 44, 51,
	58, 59, 52, 45, 38, 31, 39, 46,
	53, 60, 61, 54, 47, 55, 62, 63,
}

func init() {
	scanTables[0] = zigzag8x8
	for t := 1; t < 16; t++ {
		for i, v := range zigzag8x8 {
			switch t % 4 {
			case 1: // transpose (swap row/col)
				scanTables[t][i] = (v%8)*8 + v/8
			case 2: // reverse within row
				scanTables[t][i] = (v/8)*8 + (7 - v%8)
			case 3: // reverse within column
				scanTables[t][i] = (7-v/8)*8 + v%8
			default:
				scanTables[t][i] = v
			}
		}
		if t >= 4 {
			// Further rotate so all 16 entries are structurally distinct.
			shift := t / 4
			var rotated [64]int
			for i := range rotated {
				rotated[i] = scanTables[t][(i+shift)%64]
			}
			scanTables[t] = rotated
		}
	}
}

func scanTable(index int) *[64]int {
	return &scanTables[index&0xF]
}

// ScanTable returns one of the sixteen 8x8 coefficient-scan permutations,
// exported for package dsp's default CoeffReader, which picks a scan
// order the same way Run/ScaledRun blocks do.
func ScanTable(index int) *[64]int {
	return scanTable(index)
}
