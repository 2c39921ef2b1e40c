// Package optics provides composable, typed accessors that read and write a focus
// value A nested inside a container value S.
//
// The package is organised in three layers:
//
//   - capability interfaces (Getter, PartialGetter, Setter, Reversible,
//     PartialReversible), each declaring exactly one operation;
//   - optic kinds (Lens, Prism, Iso, FallibleIso), which are nothing more than
//     combinations of capabilities and are satisfied by any type with the right
//     method set;
//   - wrappers (LensImpl, PrismImpl, ...) returned by every constructor, which give
//     each composed optic a nameable type.
//
// Optics are built with the Mapped* constructors and combined with the
// Compose<Kind>With<Kind> functions. The kind of a composition follows from its
// operands: the result reads totally only when both operands do, and it is
// reversible only when both operands are.
//
//	mainLens := optics.MappedLens(
//		func(c Config) DatabaseConfig { return c.Main },
//		func(c *Config, v DatabaseConfig) { c.Main = v },
//	)
//	portLens := optics.MappedLens(
//		func(d DatabaseConfig) functional.Option[uint16] { return d.Port },
//		func(d *DatabaseConfig, v functional.Option[uint16]) { d.Port = v },
//	)
//	mainPort := optics.ComposeLensWithLens(mainLens, portLens)
//	mainPort.Set(&cfg, functional.Some[uint16](42))
//
// Failure types are type parameters. Total operations use Infallible, which has no
// values other than nil, so a Result carrying it is always Ok. Compositions of two
// fallible optics either share one failure type or take explicit mapper functions
// (the ...MapErr variants) that convert both sides into a common type.
//
// Set never reports failure: when a composed optic cannot read the intermediate
// value it needs to write through, the write is dropped and the source is left
// untouched. Use Over when the caller needs to know whether a write happened.
package optics
