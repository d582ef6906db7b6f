package simultaneously

import (
	"context"
)

const defaultMapName = "map"

// Map is ForEach collecting the value each call returns. outputs[i] always
// corresponds to values[i], whatever order the calls finish in. On failure
// the first error is returned and the output is nil.
//
// Example:
//
//	sizes, err := simultaneously.Map(ctx, paths, func(ctx context.Context, path string, _ int) (int64, error) {
//	    return statSize(ctx, path)
//	}, simultaneously.WithMaxConcurrency(8))
func Map[T, R any](
	ctx context.Context,
	values []T,
	fn func(ctx context.Context, value T, index int) (R, error),
	opts ...Option,
) ([]R, error) {
	outputs := make([]R, len(values))

	if len(values) == 0 {
		return outputs, nil
	}

	cfg := newOptions(append([]Option{WithName(defaultMapName)}, opts...))

	err := run(ctx, cfg, len(values), func(ctx context.Context, idx int) error {
		output, err := fn(ctx, values[idx], idx)
		if err != nil {
			return err
		}

		outputs[idx] = output

		return nil
	})
	if err != nil {
		return nil, err
	}

	return outputs, nil
}
