package internal

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func Test_Preview_of_values(t *testing.T) {
	req := require.New(t)

	req.Equal("(binary)", preview([]byte{0xff, 0xfe, 0x00}))
	req.Equal("short value", preview([]byte("short value")))

	// Multi-byte runes around the cut point must survive truncation.
	long := strings.Repeat("é", previewLimit+10)
	cut := preview([]byte(long))
	req.True(utf8.ValidString(cut))
	req.Equal(previewLimit+1, utf8.RuneCountInString(cut))
	req.True(strings.HasSuffix(cut, "…"))
}
