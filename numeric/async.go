package numeric

import (
	"context"

	"github.com/amp-labs/seqkit/simultaneously"
)

// SumAsync runs projection over s concurrently, bounded by the given options,
// and adds up the results. The first projection error is returned.
func SumAsync[T any, N Number](
	ctx context.Context,
	s []T,
	projection func(ctx context.Context, value T, index int) (N, error),
	opts ...simultaneously.Option,
) (N, error) {
	values, err := simultaneously.Map(ctx, s, projection, opts...)
	if err != nil {
		return 0, err
	}

	return Sum(values), nil
}

// ProductAsync runs projection over s concurrently, bounded by the given
// options, and multiplies the results. The first projection error is returned.
func ProductAsync[T any, N Number](
	ctx context.Context,
	s []T,
	projection func(ctx context.Context, value T, index int) (N, error),
	opts ...simultaneously.Option,
) (N, error) {
	values, err := simultaneously.Map(ctx, s, projection, opts...)
	if err != nil {
		return 0, err
	}

	return Product(values), nil
}
