package generics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPage(t *testing.T) {
	page := NewPage(2, 10, 25, []string{"a", "b", "c", "d", "e"})

	require.Equal(t, 2, page.Page)
	require.Equal(t, 5, page.Size)
	require.Equal(t, 3, page.TotalPages)
	require.Equal(t, 25, page.TotalResults)
}

func TestNewPageEmpty(t *testing.T) {
	page := NewPage(1, 20, 0, []int{})

	require.Equal(t, 0, page.TotalPages)
	require.Equal(t, 0, page.Size)
}

func TestStringToInt(t *testing.T) {
	require.Equal(t, 42, StringToInt("42"))
	require.Equal(t, 0, StringToInt(""))
	require.Equal(t, 0, StringToInt("abc"))
}
