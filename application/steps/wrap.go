package steps

import (
	"context"
	"reflect"

	"demoqa_automation/domain/interfaces"
)

// The WrapN helpers return a function with the signature of fn that runs fn as a
// step. Receivers travel with method values: Wrap1(a, rep, page.FillForm).
// They panic at wrap time when fn or rep is nil.

func Wrap0[R any](a Annotation, rep interfaces.StepReporter, fn func(context.Context) (R, error)) func(context.Context) (R, error) {
	name := mustWrap(rep, fn)
	return func(ctx context.Context) (R, error) {
		return invoke(ctx, rep, a.Label(name), fn)
	}
}

func Wrap1[A, R any](a Annotation, rep interfaces.StepReporter, fn func(context.Context, A) (R, error)) func(context.Context, A) (R, error) {
	name := mustWrap(rep, fn)
	return func(ctx context.Context, arg A) (R, error) {
		return invoke(ctx, rep, a.Label(name, arg), func(ctx context.Context) (R, error) {
			return fn(ctx, arg)
		})
	}
}

func Wrap2[A, B, R any](a Annotation, rep interfaces.StepReporter, fn func(context.Context, A, B) (R, error)) func(context.Context, A, B) (R, error) {
	name := mustWrap(rep, fn)
	return func(ctx context.Context, arg0 A, arg1 B) (R, error) {
		return invoke(ctx, rep, a.Label(name, arg0, arg1), func(ctx context.Context) (R, error) {
			return fn(ctx, arg0, arg1)
		})
	}
}

func Wrap3[A, B, C, R any](a Annotation, rep interfaces.StepReporter, fn func(context.Context, A, B, C) (R, error)) func(context.Context, A, B, C) (R, error) {
	name := mustWrap(rep, fn)
	return func(ctx context.Context, arg0 A, arg1 B, arg2 C) (R, error) {
		return invoke(ctx, rep, a.Label(name, arg0, arg1, arg2), func(ctx context.Context) (R, error) {
			return fn(ctx, arg0, arg1, arg2)
		})
	}
}

// WrapErr0 is Wrap0 for functions that only return an error
func WrapErr0(a Annotation, rep interfaces.StepReporter, fn func(context.Context) error) func(context.Context) error {
	name := mustWrap(rep, fn)
	return func(ctx context.Context) error {
		return rep.Step(ctx, a.Label(name), fn)
	}
}

// WrapErr1 is Wrap1 for functions that only return an error
func WrapErr1[A any](a Annotation, rep interfaces.StepReporter, fn func(context.Context, A) error) func(context.Context, A) error {
	name := mustWrap(rep, fn)
	return func(ctx context.Context, arg A) error {
		return rep.Step(ctx, a.Label(name, arg), func(ctx context.Context) error {
			return fn(ctx, arg)
		})
	}
}

// WrapErr2 is Wrap2 for functions that only return an error
func WrapErr2[A, B any](a Annotation, rep interfaces.StepReporter, fn func(context.Context, A, B) error) func(context.Context, A, B) error {
	name := mustWrap(rep, fn)
	return func(ctx context.Context, arg0 A, arg1 B) error {
		return rep.Step(ctx, a.Label(name, arg0, arg1), func(ctx context.Context) error {
			return fn(ctx, arg0, arg1)
		})
	}
}

func mustWrap(rep interfaces.StepReporter, fn any) string {
	if rep == nil {
		panic("steps: nil reporter")
	}
	if v := reflect.ValueOf(fn); v.Kind() != reflect.Func || v.IsNil() {
		panic("steps: nil function")
	}
	return funcName(fn)
}
