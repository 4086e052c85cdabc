package commands

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_propsOptionsValidate(t *testing.T) {
	testCases := []struct {
		opts  propsOptions
		valid bool
	}{
		{opts: propsOptions{File1: "a.json", MaxSize: "16MB"}, valid: true},
		{opts: propsOptions{File1: "a.json", File2: "b.json", Patch: true}, valid: true},
		{opts: propsOptions{File1: "a.json", MaxSize: "0"}, valid: true},
		{opts: propsOptions{MaxSize: "16MB"}, valid: false},
		{opts: propsOptions{File1: "a.json", Patch: true}, valid: false},
		{opts: propsOptions{File1: "a.json", MaxSize: "huge"}, valid: false},
	}

	for _, tc := range testCases {
		err := tc.opts.Validate()
		if tc.valid {
			require.NoError(t, err)
		} else {
			require.Error(t, err)
		}
	}
}

func Test_maxInputSize(t *testing.T) {
	size, err := maxInputSize("0")
	require.NoError(t, err)
	require.Zero(t, size)

	size, err = maxInputSize("1KB")
	require.NoError(t, err)
	require.EqualValues(t, 1024, size)

	_, err = maxInputSize("1 potato")
	require.Error(t, err)
}
