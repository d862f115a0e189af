package huffman

import "log/slog"

// Table holds one occurrence count per byte value.
type Table [Symbols]int

// DefaultTable is the byte distribution measured over recorded game traffic.
// Both ends of a connection must seed their models from the same table.
var DefaultTable = Table{
	250315, 41193, 6292, 7106, 3730, 3750, 6110, 23283, // 0x00
	33317, 6950, 7838, 9714, 9257, 17259, 3949, 1778, // 0x08
	8288, 1604, 1590, 1663, 1100, 1213, 1238, 1134, // 0x10
	1749, 1059, 1246, 1149, 1273, 4486, 2805, 3472, // 0x18
	21819, 1159, 1670, 1066, 1043, 1012, 1053, 1070, // 0x20
	1726, 888, 1180, 850, 960, 780, 1752, 3296, // 0x28
	10630, 4514, 5881, 2685, 4650, 3837, 2093, 1867, // 0x30
	2584, 1949, 1972, 940, 1134, 1788, 1670, 1206, // 0x38
	5719, 6128, 7222, 6654, 3710, 3795, 1492, 1524, // 0x40
	2215, 1140, 1355, 971, 2180, 1248, 1328, 1195, // 0x48
	1770, 1078, 1264, 1266, 1168, 965, 1155, 1186, // 0x50
	1347, 1228, 1529, 1600, 2617, 2048, 2546, 3275, // 0x58
	2410, 3585, 2504, 2800, 2675, 6146, 3663, 2840, // 0x60
	14253, 3164, 2221, 1687, 3208, 2739, 3512, 4796, // 0x68
	4091, 3515, 5288, 4016, 7937, 6031, 5360, 3924, // 0x70
	4892, 3743, 4566, 4807, 5852, 6400, 6225, 8291, // 0x78
	23243, 7838, 7073, 8935, 5437, 4483, 3641, 5256, // 0x80
	5312, 5328, 5370, 3492, 2458, 1694, 1821, 2121, // 0x88
	1916, 1149, 1516, 1367, 1236, 1029, 1258, 1104, // 0x90
	1245, 1006, 1149, 1025, 1241, 952, 1287, 997, // 0x98
	1713, 1009, 1187, 879, 1099, 929, 1078, 951, // 0xa0
	1656, 930, 1153, 1030, 1262, 1062, 1214, 1060, // 0xa8
	1621, 930, 1106, 912, 1034, 892, 1158, 990, // 0xb0
	1175, 850, 1121, 903, 1087, 920, 1144, 1056, // 0xb8
	3462, 2240, 4397, 12136, 7758, 1345, 1307, 3278, // 0xc0
	1950, 886, 1023, 1112, 1077, 1042, 1061, 1071, // 0xc8
	1484, 1001, 1096, 915, 1052, 995, 1070, 876, // 0xd0
	1111, 851, 1059, 805, 1112, 923, 1103, 817, // 0xd8
	1899, 1872, 976, 841, 1127, 956, 1159, 950, // 0xe0
	7791, 954, 1289, 933, 1127, 3207, 1020, 927, // 0xe8
	1355, 768, 1040, 745, 952, 805, 1073, 740, // 0xf0
	1013, 805, 1008, 796, 996, 1057, 11457, 13504, // 0xf8
}

// NewSeeded returns a model that has observed every byte value as often as
// t says, in ascending byte order. Seeding runs the same update as live
// traffic.
func NewSeeded(t *Table) *Model {
	m := New()
	for sym, n := range t {
		for j := 0; j < n; j++ {
			m.AddRef(byte(sym))
		}
	}
	return m
}

// Pair is an encoder model and a decoder model seeded from the same table.
type Pair struct {
	Encoder *Model
	Decoder *Model
}

// NewPair seeds both models of a pair from t.
func NewPair(t *Table) *Pair {
	enc := NewSeeded(t)
	p := &Pair{Encoder: enc, Decoder: enc.Clone()}
	slog.Debug("huffman models seeded", "nodes", p.Encoder.Nodes())
	return p
}
