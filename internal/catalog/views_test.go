package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewPartition(t *testing.T) {
	products := sampleProducts()
	products[1].IsDeleted = true
	products[3].IsDeleted = true

	active := ActiveView(products)
	trash := TrashView(products)

	assert.Len(t, active, 3)
	assert.Len(t, trash, 2)
	assert.Equal(t, len(products), len(active)+len(trash))

	for _, p := range active {
		assert.False(t, p.IsDeleted)
	}
	for _, p := range trash {
		assert.True(t, p.IsDeleted)
	}
}

func TestSoftDeleteOnlyFlipsFlag(t *testing.T) {
	original := sampleProducts()[1]

	deleted := original
	deleted.IsDeleted = true

	// restauration : retour exact à l'état d'origine
	restored := deleted
	restored.IsDeleted = false
	assert.Equal(t, original, restored)

	// aucun autre champ ne change entre les deux vues
	deleted.IsDeleted = original.IsDeleted
	assert.Equal(t, original, deleted)
}
