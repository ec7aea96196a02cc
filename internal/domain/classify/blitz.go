package classify

import "github.com/okian/pgn2csv/internal/domain/header"

// BlitzRow is the output schema of the blitz extractor. Result is 1 for a
// white win, 0 for a draw, -1 for a black win.
type BlitzRow struct {
	White           string            `csv:"white"`
	Black           string            `csv:"black"`
	Result          int8              `csv:"result"`
	UTCDate         string            `csv:"utc_date"`
	UTCTime         string            `csv:"utc_time"`
	WhiteElo        header.Rating     `csv:"white_elo"`
	BlackElo        header.Rating     `csv:"black_elo"`
	WhiteRatingDiff header.RatingDiff `csv:"white_rating_diff"`
	BlackRatingDiff header.RatingDiff `csv:"black_rating_diff"`
}

// Blitz extracts rated blitz games as a pure header projection; the movetext
// never matters.
type Blitz struct {
	row  BlitzRow
	skip bool
}

// NewBlitz constructs a blitz extractor.
func NewBlitz() Classifier {
	return &Blitz{}
}

func (b *Blitz) BeginGame() {
	b.skip = false
}

func (b *Blitz) Header(key, value []byte) {
	if b.skip {
		return
	}

	switch string(key) {
	case "Event":
		if string(value) != "Rated Blitz game" {
			b.skip = true
		}
	case "White":
		b.row.White = string(value)
	case "Black":
		b.row.Black = string(value)
	case "Result":
		result, err := header.ParseResult(value)
		if err != nil {
			b.skip = true
			return
		}
		switch result {
		case header.ResultWhiteWin:
			b.row.Result = 1
		case header.ResultDraw:
			b.row.Result = 0
		case header.ResultBlackWin:
			b.row.Result = -1
		default:
			b.skip = true
		}
	case "UTCDate":
		b.row.UTCDate = string(value)
	case "UTCTime":
		b.row.UTCTime = string(value)
	case "WhiteElo":
		rating, err := header.ParseRating(value)
		if err != nil {
			b.skip = true
			return
		}
		b.row.WhiteElo = rating
	case "BlackElo":
		rating, err := header.ParseRating(value)
		if err != nil {
			b.skip = true
			return
		}
		b.row.BlackElo = rating
	case "WhiteRatingDiff":
		diff, err := header.ParseRatingDiff(value)
		if err != nil {
			b.skip = true
			return
		}
		b.row.WhiteRatingDiff = diff
	case "BlackRatingDiff":
		diff, err := header.ParseRatingDiff(value)
		if err != nil {
			b.skip = true
			return
		}
		b.row.BlackRatingDiff = diff
	}
}

func (b *Blitz) EndHeaders() bool {
	return b.skip
}

func (b *Blitz) Comment([]byte) {}

func (b *Blitz) BeginVariation() bool {
	return true
}

func (b *Blitz) EndGame() {}

func (b *Blitz) Finalize() (any, bool) {
	row := b.row
	b.row = BlitzRow{}
	if b.skip {
		return nil, false
	}
	return row, true
}
