package convert_test

import (
	"testing"

	"kbase"
	"kbase/convert"
	"kbase/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Convert(t *testing.T) {
	t.Parallel()

	t.Run("dispatches by extension", func(t *testing.T) {
		t.Parallel()

		registry := convert.NewRegistry()
		registry.Register("txt", convert.NewPlain())

		result, err := registry.Convert([]byte("hello"), "txt")

		require.NoError(t, err)
		assert.Equal(t, "hello", result.Text)
	})

	t.Run("normalizes extension case and leading dot", func(t *testing.T) {
		t.Parallel()

		registry := convert.NewRegistry()
		registry.Register(".TXT", convert.NewPlain())

		_, err := registry.Convert([]byte("hello"), "txt")
		require.NoError(t, err)

		_, err = registry.Convert([]byte("hello"), ".Txt")
		require.NoError(t, err)
	})

	t.Run("returns EUNPROCESSABLE for unregistered formats", func(t *testing.T) {
		t.Parallel()

		registry := convert.NewRegistry()

		_, err := registry.Convert([]byte("%PDF-1.7"), "pdf")

		require.Error(t, err)
		assert.Equal(t, kbase.EUNPROCESSABLE, kbase.ErrorCode(err))
	})

	t.Run("passes data through to the registered converter", func(t *testing.T) {
		t.Parallel()

		var gotExt string
		registry := convert.NewRegistry()
		registry.Register("docx", &mock.Converter{
			ConvertFn: func(data []byte, ext string) (*kbase.ConvertResult, error) {
				gotExt = ext
				return &kbase.ConvertResult{Text: "converted"}, nil
			},
		})

		result, err := registry.Convert([]byte{0x50, 0x4b}, "docx")

		require.NoError(t, err)
		assert.Equal(t, "converted", result.Text)
		assert.Equal(t, "docx", gotExt)
	})
}

func TestPlain_Convert(t *testing.T) {
	t.Parallel()

	t.Run("rejects whitespace-only files", func(t *testing.T) {
		t.Parallel()

		_, err := convert.NewPlain().Convert([]byte("  \n\t "), "txt")

		require.Error(t, err)
		assert.Equal(t, kbase.EUNPROCESSABLE, kbase.ErrorCode(err))
	})
}
