package clock_test

import (
	"errors"
	"testing"

	"github.com/okian/pgn2csv/internal/domain/clock"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNextCommand(t *testing.T) {
	Convey("Given a comment with a single-parameter command", t, func() {
		cmd, _, ok := clock.NextCommand([]byte("[%eval 0.17]"))
		So(ok, ShouldBeTrue)
		So(string(cmd.Name), ShouldEqual, "eval")
		So(len(cmd.Params), ShouldEqual, 1)
		So(string(cmd.Params[0]), ShouldEqual, "0.17")
	})

	Convey("Given a comma-delimited parameter list", t, func() {
		cmd, _, ok := clock.NextCommand([]byte("[%list -0.1,2:34/5, 6, ]"))
		So(ok, ShouldBeTrue)
		So(string(cmd.Name), ShouldEqual, "list")
		So(len(cmd.Params), ShouldEqual, 4)
		So(string(cmd.Params[0]), ShouldEqual, "-0.1")
		So(string(cmd.Params[1]), ShouldEqual, "2:34/5")
		So(string(cmd.Params[2]), ShouldEqual, " 6")
		So(string(cmd.Params[3]), ShouldEqual, " ")
	})

	Convey("Given a comment with several commands", t, func() {
		rest := []byte(" [%eval 0.17] [%clk 0:00:30] ")

		cmd, rest, ok := clock.NextCommand(rest)
		So(ok, ShouldBeTrue)
		So(string(cmd.Name), ShouldEqual, "eval")

		cmd, rest, ok = clock.NextCommand(rest)
		So(ok, ShouldBeTrue)
		So(string(cmd.Name), ShouldEqual, "clk")
		So(string(cmd.Params[0]), ShouldEqual, "0:00:30")

		_, _, ok = clock.NextCommand(rest)
		So(ok, ShouldBeFalse)
	})

	Convey("Given a comment without a command", t, func() {
		_, _, ok := clock.NextCommand([]byte("a quiet move"))
		So(ok, ShouldBeFalse)
	})
}

func TestExtract(t *testing.T) {
	ex := clock.NewExtractor("clk")

	Convey("Given a comment with a clock command", t, func() {
		Convey("When the clock is well formed", func() {
			tm, err := ex.Extract([]byte(" [%eval -0.3] [%clk 1:02:03] "))
			So(err, ShouldBeNil)
			So(tm.Hours, ShouldEqual, 1)
			So(tm.Minutes, ShouldEqual, 2)
			So(tm.Seconds, ShouldEqual, 3)
			So(tm.TotalSeconds(), ShouldEqual, 3723)
		})

		Convey("When the clock value is malformed", func() {
			_, err := ex.Extract([]byte("[%clk 0:00]"))
			So(errors.Is(err, clock.ErrClockFormat), ShouldBeTrue)

			_, err = ex.Extract([]byte("[%clk 0:xx:30]"))
			So(errors.Is(err, clock.ErrClockFormat), ShouldBeTrue)
		})
	})

	Convey("Given a comment without a clock command", t, func() {
		_, err := ex.Extract([]byte(" [%eval 0.17] "))
		So(errors.Is(err, clock.ErrNoClock), ShouldBeTrue)

		_, err = ex.Extract([]byte("good move"))
		So(errors.Is(err, clock.ErrNoClock), ShouldBeTrue)
	})
}
