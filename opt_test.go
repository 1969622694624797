package strz_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarantool/go-option"

	strz "github.com/strz/go-strz"
)

func TestNewOpt(t *testing.T) {
	mySerde := strz.NewOpt[uuid.UUID](uuid.Parse)

	t.Run("no value stays no value in both directions", func(t *testing.T) {
		text, err := mySerde.Serialize(option.None[uuid.UUID]())
		require.NoError(t, err)
		assert.False(t, text.IsSome())

		value, err := mySerde.Deserialize(option.None[string]())
		assert.NoError(t, err)
		assert.False(t, value.IsSome())
	})

	t.Run("a present value rides the text bridge", func(t *testing.T) {
		id := uuid.MustParse("43844b29-6c23-477b-a779-57b97e84a1e8")

		text, err := mySerde.Serialize(option.Some(id))
		require.NoError(t, err)
		require.True(t, text.IsSome())
		assert.Equal(t, "43844b29-6c23-477b-a779-57b97e84a1e8", text.Unwrap())

		value, err := mySerde.Deserialize(text)
		assert.NoError(t, err)
		require.True(t, value.IsSome())
		assert.Equal(t, id, value.Unwrap())
	})

	t.Run("a present but invalid value fails with a ParseError", func(t *testing.T) {
		value, err := mySerde.Deserialize(option.Some("not-a-uuid"))
		assert.False(t, value.IsSome())

		var parseErr strz.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, "not-a-uuid", parseErr.Input())
	})
}
