package header_test

import (
	"errors"
	"testing"

	"github.com/okian/pgn2csv/internal/domain/header"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParseRating(t *testing.T) {
	Convey("Given rating values", t, func() {
		Convey("When parsing a plain unsigned integer", func() {
			r, err := header.ParseRating([]byte("1523"))
			So(err, ShouldBeNil)
			So(r, ShouldEqual, header.Rating(1523))
		})

		Convey("When parsing a non-numeric value", func() {
			_, err := header.ParseRating([]byte("?"))
			So(errors.Is(err, header.ErrRating), ShouldBeTrue)
		})

		Convey("When parsing a negative value", func() {
			_, err := header.ParseRating([]byte("-100"))
			So(err, ShouldNotBeNil)
		})
	})
}

func TestParseRatingDiff(t *testing.T) {
	Convey("Given rating diff values", t, func() {
		Convey("When parsing signed values", func() {
			d, err := header.ParseRatingDiff([]byte("+8"))
			So(err, ShouldBeNil)
			So(d, ShouldEqual, header.RatingDiff(8))

			d, err = header.ParseRatingDiff([]byte("-12"))
			So(err, ShouldBeNil)
			So(d, ShouldEqual, header.RatingDiff(-12))
		})

		Convey("When parsing garbage", func() {
			_, err := header.ParseRatingDiff([]byte("n/a"))
			So(errors.Is(err, header.ErrRatingDiff), ShouldBeTrue)
		})
	})
}

func TestParseTimeControl(t *testing.T) {
	Convey("Given time control values", t, func() {
		Convey("When parsing the time+inc form", func() {
			tc, err := header.ParseTimeControl([]byte("300+0"))
			So(err, ShouldBeNil)
			So(tc.InitialTime, ShouldEqual, 300)
			So(tc.Increment, ShouldEqual, 0)

			tc, err = header.ParseTimeControl([]byte("180+2"))
			So(err, ShouldBeNil)
			So(tc.InitialTime, ShouldEqual, 180)
			So(tc.Increment, ShouldEqual, 2)
		})

		Convey("When parsing unsupported forms", func() {
			for _, raw := range []string{"-", "?", "300", "40/9000", "1/2+1"} {
				_, err := header.ParseTimeControl([]byte(raw))
				So(errors.Is(err, header.ErrTimeControl), ShouldBeTrue)
			}
		})
	})
}

func TestParseTermination(t *testing.T) {
	Convey("Given termination values", t, func() {
		cases := map[string]header.Termination{
			"Normal":           header.TerminationNormal,
			"Time forfeit":     header.TerminationTimeForfeit,
			"Abandoned":        header.TerminationAbandoned,
			"Rules infraction": header.TerminationRulesInfraction,
			"Unterminated":     header.TerminationUnterminated,
			"Unknown":          header.TerminationUnknown,
		}
		Convey("When parsing every known value", func() {
			for raw, want := range cases {
				got, err := header.ParseTermination([]byte(raw))
				So(err, ShouldBeNil)
				So(got, ShouldEqual, want)
			}
		})

		Convey("When parsing an unrecognized value", func() {
			_, err := header.ParseTermination([]byte("Adjourned"))
			So(errors.Is(err, header.ErrTermination), ShouldBeTrue)
		})
	})
}

func TestParseResult(t *testing.T) {
	Convey("Given result values", t, func() {
		Convey("When parsing every standard result", func() {
			got, err := header.ParseResult([]byte("1-0"))
			So(err, ShouldBeNil)
			So(got, ShouldEqual, header.ResultWhiteWin)

			got, err = header.ParseResult([]byte("1/2-1/2"))
			So(err, ShouldBeNil)
			So(got, ShouldEqual, header.ResultDraw)

			got, err = header.ParseResult([]byte("0-1"))
			So(err, ShouldBeNil)
			So(got, ShouldEqual, header.ResultBlackWin)

			got, err = header.ParseResult([]byte("*"))
			So(err, ShouldBeNil)
			So(got, ShouldEqual, header.ResultOther)
		})

		Convey("When parsing an unrecognized value", func() {
			_, err := header.ParseResult([]byte("2-0"))
			So(errors.Is(err, header.ErrResult), ShouldBeTrue)
		})
	})
}
