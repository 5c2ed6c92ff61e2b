package mention

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampStyle_Code(t *testing.T) {
	tests := []struct {
		style TimestampStyle
		code  byte
	}{
		{StyleShortTime, 't'},
		{StyleLongTime, 'T'},
		{StyleShortDate, 'd'},
		{StyleLongDate, 'D'},
		{StyleShortDateTime, 'f'},
		{StyleLongDateTime, 'F'},
		{StyleRelativeTime, 'R'},
	}

	for _, tt := range tests {
		t.Run(tt.style.String(), func(t *testing.T) {
			assert.Equal(t, tt.code, tt.style.Code())

			got, ok := StyleForCode(tt.code)
			require.True(t, ok)
			assert.Equal(t, tt.style, got)
		})
	}
}

func TestTimestampStyle_None(t *testing.T) {
	assert.Equal(t, byte(0), StyleNone.Code())
	assert.Equal(t, "default", StyleNone.String())
}

func TestStyleForCode_Unknown(t *testing.T) {
	for _, c := range []byte{'Z', 'r', 'x', '0', ':', 0} {
		_, ok := StyleForCode(c)
		assert.False(t, ok, "code %q should not name a style", c)
	}
}
