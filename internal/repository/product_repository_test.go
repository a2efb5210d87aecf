package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetOrCreateTagBlankName(t *testing.T) {
	repo := CreateProductRepository(nil)

	id, err := repo.GetOrCreateTag(context.Background(), "")
	assert.NoError(t, err)
	assert.Nil(t, id)

	id, err = repo.GetOrCreateTag(context.Background(), "   ")
	assert.NoError(t, err)
	assert.Nil(t, id)
}
