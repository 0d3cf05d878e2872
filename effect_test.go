// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monad_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/monad"
)

func TestEffectIsDeferred(t *testing.T) {
	ran := false
	e := monad.NewEffect(func() any { ran = true; return 1 }).
		Map(func(v any) any { return v.(int) + 1 })
	require.False(t, ran, "construction and composition must not execute")
	require.Equal(t, 2, e.Run())
	require.True(t, ran)
}

func TestEffectUnwrapPipeline(t *testing.T) {
	// Both intermediate simple containers are transparently unwrapped.
	got := monad.NewEffect(func() any { return monad.Success(5) }).
		Map(func(v any) any { return monad.Just(v.(int) + 3) }).
		Chain(func(v any) monad.Effect {
			return monad.NewEffect(func() any { return v.(int) * 2 })
		}).
		Run()
	require.Equal(t, 16, got)
}

func TestEffectHaltingShortCircuits(t *testing.T) {
	fail := monad.Fail("boom")
	got := monad.NewEffect(func() any { return fail }).
		Map(func(any) any { t.Fatal("step must not run"); return nil }).
		Chain(func(any) monad.Effect { t.Fatal("step must not run"); return monad.PureEffect(0) }).
		Run()
	require.Equal(t, fail, got, "halting container propagates as-is")
}

func TestEffectMapLazyReturnViolates(t *testing.T) {
	e := monad.PureEffect(1).Map(func(any) any { return monad.PureEffect(2) })
	requireViolation(t, func() { e.Run() })

	e = monad.PureEffect(1).Map(func(any) any { return monad.PureState(2) })
	requireViolation(t, func() { e.Run() })
}

func TestEffectMapUnwrapsContinuingResult(t *testing.T) {
	got := monad.PureEffect(1).
		Map(func(v any) any { return monad.Just(v.(int) + 1) }).
		Run()
	require.Equal(t, 2, got, "continuing result is unwrapped once more before storing")
}

func TestEffectMapKeepsHaltingResult(t *testing.T) {
	got := monad.PureEffect(1).
		Map(func(any) any { return monad.Nothing() }).
		Run()
	s, ok := got.(monad.Simple)
	require.True(t, ok)
	require.True(t, s.IsNothing())
}

func TestEffectChainZeroEffectViolates(t *testing.T) {
	e := monad.PureEffect(1).Chain(func(any) monad.Effect { return monad.Effect{} })
	requireViolation(t, func() { e.Run() })
}

func TestEffectCatchRecoversPanic(t *testing.T) {
	boom := errors.New("boom")
	got := monad.NewEffect(func() any { panic(boom) }).
		Catch(func(err any) any {
			require.Equal(t, boom, err)
			return 99
		}).
		Run()
	require.Equal(t, 99, got)
}

func TestEffectCatchNotInvokedOnSuccess(t *testing.T) {
	got := monad.PureEffect(7).
		Catch(func(any) any { t.Fatal("must not run"); return nil }).
		Run()
	require.Equal(t, 7, got)
}

func TestEffectCatchEffectResult(t *testing.T) {
	got := monad.NewEffect(func() any { panic("x") }).
		Catch(func(any) any {
			return monad.NewEffect(func() any { return monad.Success(5) })
		}).
		Run()
	require.Equal(t, 5, got, "recovery Effect is invoked and its result unwrapped")
}

func TestEffectCatchContinuingResultUnwrapped(t *testing.T) {
	got := monad.NewEffect(func() any { panic("x") }).
		Catch(func(any) any { return monad.Just(3) }).
		Run()
	require.Equal(t, 3, got)
}

func TestEffectCatchStateResultViolates(t *testing.T) {
	e := monad.NewEffect(func() any { panic("x") }).
		Catch(func(any) any { return monad.PureState(1) })
	requireViolation(t, func() { e.Run() })
}

func TestEffectCatchReRaisesViolation(t *testing.T) {
	e := monad.NewEffect(func() any {
		return monad.Fail("boom").Result() // violation, not domain data
	}).Catch(func(any) any { t.Fatal("violations are never recoverable"); return nil })
	requireViolation(t, func() { e.Run() })
}

func TestEffectFoldDispatch(t *testing.T) {
	h := monad.FoldHandlers{
		OnRight: func(v any) any { return "right:" + v.(monad.Simple).String() },
		OnHalt:  func(v any) any { return "halt:" + v.(monad.Simple).String() },
		OnValue: func(v any) any { return "plain" },
	}

	require.Equal(t, "right:Just(1)",
		monad.NewEffect(func() any { return monad.Just(1) }).Fold(h))
	require.Equal(t, "halt:Nothing",
		monad.NewEffect(func() any { return monad.Nothing() }).Fold(h))
	require.Equal(t, "plain", monad.PureEffect(1).Fold(h))
}

func TestEffectFoldDefaultsToIdentity(t *testing.T) {
	require.Equal(t, 5, monad.PureEffect(5).Fold(monad.FoldHandlers{}))
	fail := monad.Fail("boom")
	require.Equal(t, fail,
		monad.NewEffect(func() any { return fail }).Fold(monad.FoldHandlers{}))
}

func TestEffectSyncTrackRejectsPendingResult(t *testing.T) {
	async := monad.NewEffect(func() any {
		return monad.Async(func() any { return 1 })
	})

	requireViolation(t, func() { async.Run() })
	requireViolation(t, func() { async.Map(func(v any) any { return v }).Run() })
	requireViolation(t, func() {
		async.Chain(func(any) monad.Effect { return monad.PureEffect(1) }).Run()
	})
	requireViolation(t, func() { async.Fold(monad.FoldHandlers{}) })
	requireViolation(t, func() { async.Catch(func(any) any { return nil }).Run() })
}

func TestEffectRunAsync(t *testing.T) {
	got := monad.NewEffect(func() any {
		return monad.Async(func() any { return 21 })
	}).
		MapAsync(func(v any) any { return v.(int) * 2 }).
		RunAsync()
	require.Equal(t, 42, got)
}

func TestEffectAsyncPipelineUnwraps(t *testing.T) {
	got := monad.NewEffect(func() any {
		return monad.Async(func() any { return monad.Success(5) })
	}).
		MapAsync(func(v any) any {
			return monad.Async(func() any { return monad.Just(v.(int) + 3) })
		}).
		ChainAsync(func(v any) monad.Effect {
			return monad.NewEffect(func() any {
				return monad.Async(func() any { return v.(int) * 2 })
			})
		}).
		RunAsync()
	require.Equal(t, 16, got)
}

func TestEffectAsyncHaltingShortCircuits(t *testing.T) {
	fail := monad.Fail("boom")
	got := monad.NewEffect(func() any { return fail }).
		MapAsync(func(any) any { t.Fatal("step must not run"); return nil }).
		RunAsync()
	require.Equal(t, fail, got)
}

func TestEffectCatchAsync(t *testing.T) {
	boom := errors.New("boom")
	got := monad.NewEffect(func() any {
		return monad.Async(func() any { panic(boom) })
	}).
		CatchAsync(func(err any) any {
			require.Equal(t, boom, err)
			return monad.Async(func() any { return 7 })
		}).
		RunAsync()
	require.Equal(t, 7, got)
}

func TestEffectCatchAsyncReRaisesViolation(t *testing.T) {
	e := monad.NewEffect(func() any {
		return monad.Async(func() any { return monad.Nothing().Result() })
	}).CatchAsync(func(any) any { t.Fatal("violations are never recoverable"); return nil })
	requireViolation(t, func() { e.RunAsync() })
}

func TestEffectFoldAsync(t *testing.T) {
	got := monad.NewEffect(func() any {
		return monad.Async(func() any { return monad.Just(1) })
	}).FoldAsync(monad.FoldHandlers{
		OnRight: func(v any) any { return v.(monad.Simple).Result() },
	})
	require.Equal(t, 1, got)
}

func TestPureEffect(t *testing.T) {
	require.Equal(t, "v", monad.PureEffect("v").Run())
	require.Equal(t, "Effect", monad.PureEffect("v").String())
}

func TestNewEffectNilViolates(t *testing.T) {
	requireViolation(t, func() { monad.NewEffect(nil) })
}
