package board

// Small is the rank-3 star board: 6 pieces per side, 73 cells.
var Small = &Definition{
	Name:           "small",
	NPieces:        6,
	Size:           73,
	Adjacency:      smallAdjacency,
	StartingPieces: []int8{0, 1, 2, 3, 4, 5, 67, 68, 69, 70, 71, 72},
	P1Distance:     smallP1Distance,
	P2Distance:     smallP2Distance,
	MinDistance:    8,
	TurnLimit:      36,
}

var smallAdjacency = [][NumDirections]int8{
	{1, 2, -1, -1, -1, -1},
	{3, 4, 2, 0, -1, -1},
	{4, 5, -1, -1, 0, 1},
	{9, 10, 4, 1, -1, -1},
	{10, 11, 5, 2, 1, 3},
	{11, 12, -1, -1, 2, 4},
	{-1, 16, 7, -1, -1, -1},
	{16, 17, 8, -1, -1, 6},
	{17, 18, 9, -1, -1, 7},
	{18, 19, 10, 3, -1, 8},
	{19, 20, 11, 4, 3, 9},
	{20, 21, 12, 5, 4, 10},
	{21, 22, 13, -1, 5, 11},
	{22, 23, 14, -1, -1, 12},
	{23, 24, 15, -1, -1, 13},
	{24, -1, -1, -1, -1, 14},
	{-1, 25, 17, 7, 6, -1},
	{25, 26, 18, 8, 7, 16},
	{26, 27, 19, 9, 8, 17},
	{27, 28, 20, 10, 9, 18},
	{28, 29, 21, 11, 10, 19},
	{29, 30, 22, 12, 11, 20},
	{30, 31, 23, 13, 12, 21},
	{31, 32, 24, 14, 13, 22},
	{32, -1, -1, 15, 14, 23},
	{-1, 33, 26, 17, 16, -1},
	{33, 34, 27, 18, 17, 25},
	{34, 35, 28, 19, 18, 26},
	{35, 36, 29, 20, 19, 27},
	{36, 37, 30, 21, 20, 28},
	{37, 38, 31, 22, 21, 29},
	{38, 39, 32, 23, 22, 30},
	{39, -1, -1, 24, 23, 31},
	{40, 41, 34, 26, 25, -1},
	{41, 42, 35, 27, 26, 33},
	{42, 43, 36, 28, 27, 34},
	{43, 44, 37, 29, 28, 35},
	{44, 45, 38, 30, 29, 36},
	{45, 46, 39, 31, 30, 37},
	{46, 47, -1, 32, 31, 38},
	{48, 49, 41, 33, -1, -1},
	{49, 50, 42, 34, 33, 40},
	{50, 51, 43, 35, 34, 41},
	{51, 52, 44, 36, 35, 42},
	{52, 53, 45, 37, 36, 43},
	{53, 54, 46, 38, 37, 44},
	{54, 55, 47, 39, 38, 45},
	{55, 56, -1, -1, 39, 46},
	{57, 58, 49, 40, -1, -1},
	{58, 59, 50, 41, 40, 48},
	{59, 60, 51, 42, 41, 49},
	{60, 61, 52, 43, 42, 50},
	{61, 62, 53, 44, 43, 51},
	{62, 63, 54, 45, 44, 52},
	{63, 64, 55, 46, 45, 53},
	{64, 65, 56, 47, 46, 54},
	{65, 66, -1, -1, 47, 55},
	{-1, -1, 58, 48, -1, -1},
	{-1, -1, 59, 49, 48, 57},
	{-1, -1, 60, 50, 49, 58},
	{-1, 67, 61, 51, 50, 59},
	{67, 68, 62, 52, 51, 60},
	{68, 69, 63, 53, 52, 61},
	{69, -1, 64, 54, 53, 62},
	{-1, -1, 65, 55, 54, 63},
	{-1, -1, 66, 56, 55, 64},
	{-1, -1, -1, -1, 56, 65},
	{-1, 70, 68, 61, 60, -1},
	{70, 71, 69, 62, 61, 67},
	{71, -1, -1, 63, 62, 68},
	{-1, 72, 71, 68, 67, -1},
	{72, -1, -1, 69, 68, 70},
	{-1, -1, -1, 71, 70, -1},
}

var smallP1Distance = []int{
	12, 11, 11, 10, 10, 10, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 8, 8, 8, 8,
	8, 8, 8, 8, 8, 7, 7, 7, 7, 7, 7, 7, 7, 6, 6, 6, 6, 6, 6, 6,
	6, 5, 5, 5, 5, 5, 5, 6, 6, 5, 4, 4, 4, 4, 4, 5, 6, 6, 5, 4,
	3, 3, 3, 3, 4, 5, 6, 2, 2, 2, 1, 1, 0,
}

var smallP2Distance = []int{
	0, 1, 1, 2, 2, 2, 6, 5, 4, 3, 3, 3, 3, 4, 5, 6, 6, 5, 4, 4,
	4, 4, 4, 5, 6, 6, 5, 5, 5, 5, 5, 5, 6, 6, 6, 6, 6, 6, 6, 6,
	7, 7, 7, 7, 7, 7, 7, 7, 8, 8, 8, 8, 8, 8, 8, 8, 8, 9, 9, 9,
	9, 9, 9, 9, 9, 9, 9, 10, 10, 10, 11, 11, 12,
}
