package register

import (
	"testing"

	"github.com/Veraticus/gofinances/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeSelector(t *testing.T) {
	var s TypeSelector

	_, ok := s.Current()
	assert.False(t, ok)
	assert.False(t, s.IsActive(model.TypePositive))
	assert.False(t, s.IsActive(model.TypeNegative))

	require.NoError(t, s.Select(model.TypePositive))
	assert.True(t, s.IsActive(model.TypePositive))
	assert.False(t, s.IsActive(model.TypeNegative))

	// selecting again does not toggle off
	require.NoError(t, s.Select(model.TypePositive))
	assert.True(t, s.IsActive(model.TypePositive))

	require.NoError(t, s.Select(model.TypeNegative))
	current, ok := s.Current()
	assert.True(t, ok)
	assert.Equal(t, model.TypeNegative, current)

	s.Reset()
	_, ok = s.Current()
	assert.False(t, ok)
}

func TestTypeSelector_RejectsUnknownType(t *testing.T) {
	var s TypeSelector
	require.NoError(t, s.Select(model.TypeNegative))

	for _, bad := range []model.TransactionType{"", "up", "credit"} {
		err := s.Select(bad)
		assert.ErrorIs(t, err, model.ErrInvalidType, string(bad))
	}

	current, _ := s.Current()
	assert.Equal(t, model.TypeNegative, current, "a rejected select keeps the previous type")
}

func TestCategoryPicker(t *testing.T) {
	var p CategoryPicker
	assert.False(t, p.IsOpen())

	p.Open()
	assert.True(t, p.IsOpen())
	p.Open()
	assert.True(t, p.IsOpen())

	p.Close()
	assert.False(t, p.IsOpen())
}
