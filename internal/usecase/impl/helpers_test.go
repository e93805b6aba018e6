package impl

import (
	"io"
	"log/slog"
	"time"

	"fitclub/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Policy = config.PolicyConfig{
		MaxClassCapacity:    20,
		TrainerOverlapLimit: 5,
		SaunaSurcharge:      50,
	}

	return cfg
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func clock(h, min int) time.Time {
	return time.Date(0, 1, 1, h, min, 0, 0, time.UTC)
}
