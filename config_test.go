package qcircuit

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestConfig(t *testing.T) {
	Convey("Given no environment overrides", t, func() {
		cfg, err := LoadConfig()
		So(err, ShouldBeNil)
		So(cfg, ShouldResemble, NewConfig())
	})

	Convey("Given QCIRCUIT_* variables", t, func() {
		t.Setenv("QCIRCUIT_SEED", "17")
		t.Setenv("QCIRCUIT_SHOTS", "64")
		t.Setenv("QCIRCUIT_WORKERS", "2")

		cfg, err := LoadConfig()
		So(err, ShouldBeNil)
		So(cfg.Seed, ShouldEqual, uint64(17))
		So(cfg.Shots, ShouldEqual, 64)
		So(cfg.Workers, ShouldEqual, 2)

		Convey("The seed makes the source reproducible", func() {
			a, b := cfg.RandomSource(), cfg.RandomSource()
			So(a.Float64(), ShouldEqual, b.Float64())
		})
	})

	Convey("Given out-of-range values", t, func() {
		t.Setenv("QCIRCUIT_MAX_QUBITS", "64")
		t.Setenv("QCIRCUIT_SHOTS", "-5")
		t.Setenv("QCIRCUIT_WORKERS", "0")

		cfg, err := LoadConfig()
		So(err, ShouldBeNil)
		So(cfg.MaxQubits, ShouldEqual, MaxQubits)
		So(cfg.Shots, ShouldEqual, 1)
		So(cfg.Workers, ShouldEqual, 1)
	})

	Convey("Given a malformed value", t, func() {
		t.Setenv("QCIRCUIT_SHOTS", "many")

		_, err := LoadConfig()
		So(err, ShouldNotBeNil)
	})
}
