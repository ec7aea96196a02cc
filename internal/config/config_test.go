package config_test

import (
	"context"
	"errors"
	"runtime"
	"testing"

	"github.com/okian/pgn2csv/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.WorkerCount, convey.ShouldEqual, runtime.NumCPU())
			convey.So(cfg.MetricsAddr, convey.ShouldBeEmpty)
			convey.So(cfg.Progress, convey.ShouldBeTrue)
		})
	})
}

func TestConfig_Load(t *testing.T) {
	convey.Convey("Given environment overrides", t, func() {
		t.Setenv("PGN2CSV_WORKER_COUNT", "3")
		t.Setenv("PGN2CSV_LOG_LEVEL", "debug")

		convey.Convey("When loading the config", func() {
			cfg, err := config.Load(context.Background())

			convey.Convey("Then env values win over defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.WorkerCount, convey.ShouldEqual, 3)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
			})
		})
	})

	convey.Convey("Given an invalid worker count", t, func() {
		t.Setenv("PGN2CSV_WORKER_COUNT", "0")

		convey.Convey("When loading the config", func() {
			_, err := config.Load(context.Background())

			convey.Convey("Then it should fail with ErrInvalidConfig", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})
	})
}
