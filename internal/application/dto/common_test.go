package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
)

func TestPageRequest_DefaultPage(t *testing.T) {
	t.Run("cero aplica defaults", func(t *testing.T) {
		p := dto.PageRequest{}
		p.DefaultPage()
		assert.Equal(t, 20, p.Limit)
		assert.Equal(t, 0, p.Offset)
	})
	t.Run("límite excesivo se acota a 100", func(t *testing.T) {
		p := dto.PageRequest{Limit: 5000}
		p.DefaultPage()
		assert.Equal(t, 100, p.Limit)
	})
	t.Run("valores negativos vuelven a los defaults", func(t *testing.T) {
		p := dto.PageRequest{Limit: -1, Offset: -7}
		p.DefaultPage()
		assert.Equal(t, 20, p.Limit)
		assert.Equal(t, 0, p.Offset)
	})
	t.Run("valores válidos se respetan", func(t *testing.T) {
		p := dto.PageRequest{Limit: 50, Offset: 40}
		p.DefaultPage()
		assert.Equal(t, 50, p.Limit)
		assert.Equal(t, 40, p.Offset)
	})
}
