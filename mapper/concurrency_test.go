package mapper_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"object-mapper/value"
)

func TestMapper_ConcurrentCalls(t *testing.T) {
	m := newMapper(t, append(keyedConditions(), keylessConditions()...)...)

	const workers = 16

	results := make([]*value.Record, workers)

	var g errgroup.Group
	for i := range workers {
		g.Go(func() error {
			in := mockObject("myself", "I", "Snow")
			in.Set("title", value.String(fmt.Sprintf("worker-%d", i)))

			var excluded []string
			if i%2 == 0 {
				excluded = []string{"values"}
			}

			res, err := m.MapToSource(in, excluded...)
			if err != nil {
				return err
			}

			results[i] = res

			return nil
		})
	}

	require.NoError(t, g.Wait())

	for i, res := range results {
		require.NotNil(t, res, i)
		assert.Equal(t, value.String("John"), res.Get("title"))
		assert.Equal(t, value.String("updated"), res.Get("optionalValue"))

		if i%2 == 0 {
			assert.True(t, res.Get("values").IsNull(), i)
		} else {
			assert.Equal(t, value.Strings("myself", "I", "Snow"), res.Get("values"), i)
		}
	}
}
