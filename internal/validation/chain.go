package validation

import "context"

// Rule pairs a predicate with the error reported when it does not hold.
// Holds may itself fail (for example a storage lookup); that error is
// returned unchanged by Chain.Run.
type Rule struct {
	Holds func(ctx context.Context) (bool, error)
	Fail  func() error
}

// When builds a Rule from a pure predicate.
func When(pred func() bool, fail func() error) Rule {
	return Rule{
		Holds: func(context.Context) (bool, error) { return pred(), nil },
		Fail:  fail,
	}
}

// WhenCtx builds a Rule whose predicate needs the request context.
func WhenCtx(pred func(ctx context.Context) (bool, error), fail func() error) Rule {
	return Rule{Holds: pred, Fail: fail}
}

// Present trims *src into *dst and holds when something is left.
func Present(dst, src *string, fail func() error) Rule {
	return When(func() bool {
		v, err := RequireTrimmedNonEmpty(src)
		*dst = v
		return err == nil
	}, fail)
}

// Chain evaluates rules in order and stops at the first that does not hold.
type Chain []Rule

func (c Chain) Run(ctx context.Context) error {
	for _, r := range c {
		ok, err := r.Holds(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return r.Fail()
		}
	}
	return nil
}
