package chain

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/sum3/pkg/sum/result"
)

func TestStartAndResult_Ok(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Start(ctx, result.Ok[int, error](5)).Result()
	if !out.IsOk() || out.Value() != 5 {
		t.Fatalf("expected ok with 5, got: ok=%v, val=%v, err=%v", out.IsOk(), out.Value(), out.Error())
	}
}

func TestFromValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FromValue(ctx, 7).Result()
	if !out.IsOk() || out.Value() != 7 {
		t.Fatalf("expected ok with 7, got: ok=%v, val=%v, err=%v", out.IsOk(), out.Value(), out.Error())
	}
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	err := errors.New("boom")

	called := false
	out := Then(Start(ctx, result.Err[int, error](err)), func(ctx context.Context, v int) result.Result[int, error] {
		called = true
		return result.Ok[int, error](v + 1)
	}).Result()

	if out.IsOk() || out.Error() == nil || out.Error().Error() != "boom" {
		t.Fatalf("expected failure 'boom', got: ok=%v, err=%v", out.IsOk(), out.Error())
	}
	if called {
		t.Fatalf("onOk should not be called when initial result is failure")
	}
}

func TestThen_OkPath(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Then(FromValue(ctx, 3), func(ctx context.Context, v int) result.Result[int, error] {
		return result.Ok[int, error](v * 2)
	}).Result()

	if !out.IsOk() || out.Value() != 6 {
		t.Fatalf("expected ok with 6, got: ok=%v, val=%v, err=%v", out.IsOk(), out.Value(), out.Error())
	}
}

func TestThenTry_ErrorPropagation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := ThenTry(FromValue(ctx, "bad"), func(ctx context.Context, s string) (int, error) {
		return strconv.Atoi(s)
	}).Result()

	if out.IsOk() || out.Error() == nil {
		t.Fatalf("expected failure from Atoi, got: ok=%v, val=%v", out.IsOk(), out.Value())
	}
}

func TestThenTry_Ok(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := ThenTry(FromValue(ctx, "16"), func(ctx context.Context, s string) (int, error) {
		return strconv.Atoi(s)
	}).Result()

	if !out.IsOk() || out.Value() != 16 {
		t.Fatalf("expected ok with 16, got: ok=%v, val=%v, err=%v", out.IsOk(), out.Value(), out.Error())
	}
}

func TestMap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Map(FromValue(ctx, 4), func(ctx context.Context, v int) string {
		return strconv.Itoa(v * v)
	}).Result()

	if !out.IsOk() || out.Value() != "16" {
		t.Fatalf("expected ok with '16', got: ok=%v, val=%q, err=%v", out.IsOk(), out.Value(), out.Error())
	}
}

func TestOrElse_RecoversOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	err := errors.New("primary down")

	out := Start(ctx, result.Err[int, error](err)).
		OrElse(func(ctx context.Context, e error) result.Result[int, error] {
			return result.Ok[int, error](42)
		}).Result()

	if !out.IsOk() || out.Value() != 42 {
		t.Fatalf("expected recovery to 42, got: ok=%v, val=%v, err=%v", out.IsOk(), out.Value(), out.Error())
	}

	kept := FromValue(ctx, 1).
		OrElse(func(ctx context.Context, e error) result.Result[int, error] {
			t.Fatalf("recovery should not run on ok")
			return result.Err[int, error](e)
		}).Result()
	if !kept.IsOk() || kept.Value() != 1 {
		t.Fatalf("expected ok with 1 untouched, got: ok=%v, val=%v", kept.IsOk(), kept.Value())
	}
}

func TestEnsure_RunsOnOkOnly(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	seen := 0
	FromValue(ctx, 9).Ensure(func(ctx context.Context, v int) { seen = v })
	if seen != 9 {
		t.Fatalf("expected side effect to observe 9, got %v", seen)
	}

	Start(ctx, result.Err[int, error](errors.New("e"))).
		Ensure(func(ctx context.Context, v int) {
			t.Fatalf("side effect should not run on failure")
		})
}

func TestFinallyAndGetOrElse(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	got := Finally(FromValue(ctx, 2),
		func(ctx context.Context, v int) string { return "val:" + strconv.Itoa(v) },
		func(ctx context.Context, err error) string { return "err" })
	if got != "val:2" {
		t.Fatalf("expected 'val:2', got %q", got)
	}

	got = Finally(Start(ctx, result.Err[int, error](errors.New("x"))),
		func(ctx context.Context, v int) string { return "val" },
		func(ctx context.Context, err error) string { return "err:" + err.Error() })
	if got != "err:x" {
		t.Fatalf("expected 'err:x', got %q", got)
	}

	if def := Start(ctx, result.Err[int, error](errors.New("x"))).GetOrElse(11); def != 11 {
		t.Fatalf("expected default 11, got %v", def)
	}
}
