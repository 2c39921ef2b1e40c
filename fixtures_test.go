package optics_test

import (
	"math"

	"github.com/authcorp/optics"
	"github.com/authcorp/optics/functional"
)

// Timespan is a sum type with one variant per unit.
type Timespan interface {
	timespan()
}

type (
	Seconds uint32
	Minutes uint32
	Hours   uint32
)

func (Seconds) timespan() {}
func (Minutes) timespan() {}
func (Hours) timespan()   {}

type Config struct {
	Delay    Timespan
	Filename string
	Main     DatabaseConfig
	Aux      []DatabaseConfig
}

type DatabaseConfig struct {
	Host         string
	Port         functional.Option[uint16]
	CreateResult functional.Result[string, string]
}

func defaultConfig() Config {
	return Config{
		Delay:    Minutes(14),
		Filename: "abcd",
		Main: DatabaseConfig{
			Host:         "main",
			Port:         functional.None[uint16](),
			CreateResult: functional.Ok[string, string]("ok"),
		},
		Aux: []DatabaseConfig{
			{
				Host:         "aux1",
				Port:         functional.Some[uint16](2345),
				CreateResult: functional.Err[string]("f1"),
			},
			{
				Host:         "aux2",
				Port:         functional.None[uint16](),
				CreateResult: functional.Err[string]("f2"),
			},
		},
	}
}

func delayLens() optics.LensImpl[Config, Timespan] {
	return optics.MappedLens(
		func(c Config) Timespan { return c.Delay },
		func(c *Config, v Timespan) { c.Delay = v },
	)
}

func mainLens() optics.LensImpl[Config, DatabaseConfig] {
	return optics.MappedLens(
		func(c Config) DatabaseConfig { return c.Main },
		func(c *Config, v DatabaseConfig) { c.Main = v },
	)
}

func auxLens() optics.LensImpl[Config, []DatabaseConfig] {
	return optics.MappedLens(
		func(c Config) []DatabaseConfig { return c.Aux },
		func(c *Config, v []DatabaseConfig) { c.Aux = v },
	)
}

func hostLens() optics.LensImpl[DatabaseConfig, string] {
	return optics.MappedLens(
		func(d DatabaseConfig) string { return d.Host },
		func(d *DatabaseConfig, v string) { d.Host = v },
	)
}

func portLens() optics.LensImpl[DatabaseConfig, functional.Option[uint16]] {
	return optics.MappedLens(
		func(d DatabaseConfig) functional.Option[uint16] { return d.Port },
		func(d *DatabaseConfig, v functional.Option[uint16]) { d.Port = v },
	)
}

// portPrism focuses on a configured port; setting one always configures it.
func portPrism() optics.PrismImpl[DatabaseConfig, uint16, optics.NoFocus] {
	return optics.MappedNoFocusPrism(
		func(d DatabaseConfig) (uint16, bool) { return d.Port.Get() },
		func(d *DatabaseConfig, v uint16) { d.Port = functional.Some(v) },
	)
}

func secondsPrism() optics.PrismImpl[Timespan, uint32, optics.NoFocus] {
	return optics.MappedNoFocusPrism(
		func(t Timespan) (uint32, bool) {
			s, ok := t.(Seconds)
			return uint32(s), ok
		},
		func(t *Timespan, v uint32) { *t = Seconds(v) },
	)
}

func minutesPrism() optics.PrismImpl[Timespan, uint32, optics.NoFocus] {
	return optics.MappedNoFocusPrism(
		func(t Timespan) (uint32, bool) {
			m, ok := t.(Minutes)
			return uint32(m), ok
		},
		func(t *Timespan, v uint32) { *t = Minutes(v) },
	)
}

// toU16 narrows a uint32, failing when it does not fit.
func toU16() optics.FallibleIsoImpl[uint32, uint16, string, string] {
	return optics.MappedFallibleIso(
		func(c uint32) functional.Result[uint16, string] {
			if c > math.MaxUint16 {
				return functional.Err[uint16]("Too big")
			}
			return functional.Ok[uint16, string](uint16(c))
		},
		func(v uint16) functional.Result[uint32, string] {
			return functional.Ok[uint32, string](uint32(v))
		},
	)
}

// times2 doubles a uint16, failing on overflow and on odd halves.
func times2() optics.FallibleIsoImpl[uint16, uint16, string, string] {
	return optics.MappedFallibleIso(
		func(c uint16) functional.Result[uint16, string] {
			if c > math.MaxUint16/2 {
				return functional.Err[uint16]("Overflow")
			}
			return functional.Ok[uint16, string](c * 2)
		},
		func(v uint16) functional.Result[uint16, string] {
			if v%2 != 0 {
				return functional.Err[uint16]("Not Even")
			}
			return functional.Ok[uint16, string](v / 2)
		},
	)
}

func wrappingAdd(n uint32) optics.IsoImpl[uint32, uint32] {
	return optics.MappedIso(
		func(c uint32) uint32 { return c + n },
		func(v uint32) uint32 { return v - n },
	)
}

// delaySeconds converts a Timespan to whole seconds, picking the largest unit
// that divides the value exactly on the way back.
func delaySeconds() optics.FallibleIsoImpl[Timespan, uint16, string, optics.Infallible] {
	fit := func(s uint64) functional.Result[uint16, string] {
		if s > math.MaxUint16 {
			return functional.Err[uint16]("Out of bounds")
		}
		return functional.Ok[uint16, string](uint16(s))
	}
	return optics.MappedFallibleIso(
		func(t Timespan) functional.Result[uint16, string] {
			switch v := t.(type) {
			case Seconds:
				return fit(uint64(v))
			case Minutes:
				return fit(uint64(v) * 60)
			case Hours:
				return fit(uint64(v) * 3600)
			default:
				return functional.Err[uint16]("Unknown unit")
			}
		},
		func(s uint16) functional.Result[Timespan, optics.Infallible] {
			c := uint32(s)
			switch {
			case c%3600 == 0:
				return functional.Ok[Timespan, optics.Infallible](Hours(c / 3600))
			case c%60 == 0:
				return functional.Ok[Timespan, optics.Infallible](Minutes(c / 60))
			default:
				return functional.Ok[Timespan, optics.Infallible](Seconds(c))
			}
		},
	)
}
