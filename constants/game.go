package constants

// Playfield geometry in world units
// The origin is the playfield centre, X grows right and Y grows up
const (
	// BlockSize is the side of one grid cell
	BlockSize = 20

	// PlayfieldWidth is the logical playfield width
	PlayfieldWidth = 1280

	// PlayfieldHeight is the logical playfield height
	PlayfieldHeight = 720

	// PrizeMaxCellX is the largest prize cell index from the centre on the X axis
	PrizeMaxCellX = PlayfieldWidth/2/BlockSize - 1 // 31

	// PrizeMaxCellY is the largest prize cell index from the centre on the Y axis
	PrizeMaxCellY = PlayfieldHeight/2/BlockSize - 1 // 17
)

// Initial simulation layout
const (
	// InitialHeadX, InitialHeadY is where the single starting segment is placed
	InitialHeadX = 0
	InitialHeadY = 0

	// InitialPrizeX, InitialPrizeY is the fixed position of the first prize
	InitialPrizeX = 0
	InitialPrizeY = 200
)
