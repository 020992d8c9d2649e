package wixsync

import (
	"testing"

	"github.com/arthur-debert/wixsync/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "legacy spelling",
			args: []string{"-replaceProduct", "a.wxs", "root", "App"},
			want: []string{"--replace-product", "a.wxs", "root", "App"},
		},
		{
			name: "current spelling untouched",
			args: []string{"a.wxs", "root", "App", "--replace-product"},
			want: []string{"a.wxs", "root", "App", "--replace-product"},
		},
		{
			name: "after double dash",
			args: []string{"a.wxs", "--", "-replaceProduct"},
			want: []string{"a.wxs", "--", "-replaceProduct"},
		},
		{
			name: "empty",
			args: []string{},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeArgs(tt.args))
		})
	}
}

func TestPositionalArgs(t *testing.T) {
	err := positionalArgs(nil, nil)
	require.Error(t, err)
	assert.Equal(t, errors.ErrNoArguments, errors.GetErrorCode(err))
	assert.Equal(t, -1, errors.ExitCode(err))

	err = positionalArgs(nil, []string{"a.wxs", "root"})
	require.Error(t, err)
	assert.Equal(t, errors.ErrMissingArguments, errors.GetErrorCode(err))
	assert.Equal(t, -2, errors.ExitCode(err))
	assert.Equal(t, 2, errors.GetErrorDetails(err)["got"])

	assert.NoError(t, positionalArgs(nil, []string{"a.wxs", "root", "App"}))
	assert.NoError(t, positionalArgs(nil, []string{"a.wxs", "root", "App", "KNOWN"}))
}
