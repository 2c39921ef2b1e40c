package functional

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func resultGen[T, E any](valueGen *rapid.Generator[T], errGen *rapid.Generator[E]) *rapid.Generator[Result[T, E]] {
	return rapid.Custom(func(t *rapid.T) Result[T, E] {
		if rapid.Bool().Draw(t, "isOk") {
			return Ok[T, E](valueGen.Draw(t, "value"))
		}
		return Err[T](errGen.Draw(t, "error"))
	})
}

func TestResultBasicOperations(t *testing.T) {
	t.Run("Ok holds value", func(t *testing.T) {
		r := Ok[int, string](42)
		assert.True(t, r.IsOk())
		assert.False(t, r.IsErr())
		assert.Equal(t, 42, r.Unwrap())
		assert.Equal(t, 42, r.UnwrapOr(0))
	})

	t.Run("Err holds failure", func(t *testing.T) {
		r := Err[int]("boom")
		assert.True(t, r.IsErr())
		assert.Equal(t, "boom", r.UnwrapErr())
		assert.Equal(t, 7, r.UnwrapOr(7))
		assert.Equal(t, 4, r.UnwrapOrElse(func(e string) int { return len(e) }))
	})

	t.Run("Unwrap on Err panics", func(t *testing.T) {
		assert.Panics(t, func() { Err[int]("x").Unwrap() })
		assert.Panics(t, func() { Ok[int, string](1).UnwrapErr() })
	})

	t.Run("Unpack", func(t *testing.T) {
		v, e, ok := Ok[int, string](3).Unpack()
		assert.Equal(t, 3, v)
		assert.Equal(t, "", e)
		assert.True(t, ok)

		_, e, ok = Err[int]("bad").Unpack()
		assert.Equal(t, "bad", e)
		assert.False(t, ok)
	})

	t.Run("results compare by value", func(t *testing.T) {
		assert.True(t, Ok[int, string](1) == Ok[int, string](1))
		assert.False(t, Ok[int, string](1) == Err[int]("1"))
	})

	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "Ok(1)", Ok[int, string](1).String())
		assert.Equal(t, "Err(no)", Err[int]("no").String())
	})
}

func TestResultCombinators(t *testing.T) {
	double := func(n int) int { return n * 2 }

	assert.Equal(t, Ok[int, string](4), MapResult(Ok[int, string](2), double))
	assert.Equal(t, Err[int]("e"), MapResult(Err[int]("e"), double))

	assert.Equal(t, Err[int](5), MapResultErr(Err[int]("hello"), func(s string) int { return len(s) }))
	assert.Equal(t, Ok[int, int](1), MapResultErr(Ok[int, string](1), func(s string) int { return len(s) }))

	parse := func(s string) Result[int, error] { return Try(strconv.Atoi(s)) }
	assert.Equal(t, Ok[int, error](12), FlatMapResult(Ok[string, error]("12"), parse))
	assert.True(t, FlatMapResult(Ok[string, error]("x"), parse).IsErr())

	label := MatchResult(Err[int]("e"), strconv.Itoa, func(e string) string { return "err:" + e })
	assert.Equal(t, "err:e", label)

	assert.Equal(t, Some(3), Ok[int, string](3).ToOption())
	assert.Equal(t, None[int](), Err[int]("e").ToOption())
	assert.Equal(t, Err[int]("missing"), FromOption(None[int](), "missing"))

	sentinel := errors.New("sentinel")
	assert.ErrorIs(t, Try(0, sentinel).UnwrapErr(), sentinel)
}

func TestResultProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := resultGen(rapid.Int(), rapid.String()).Draw(t, "result")

		mapped := MapResult(r, func(n int) int { return n })
		if mapped != r {
			t.Fatalf("identity map changed %v into %v", r, mapped)
		}

		var collected []int
		for v := range r.All() {
			collected = append(collected, v)
		}
		if r.IsOk() != (len(collected) == 1) {
			t.Fatalf("All yielded %d values for %v", len(collected), r)
		}

		if r.ToOption().IsSome() != r.IsOk() {
			t.Fatalf("ToOption disagrees with IsOk for %v", r)
		}
	})
}
