package catalog

import "blackstone_back_end/internal/models"

// ActiveView renvoie les produits visibles en boutique (is_deleted = false)
func ActiveView(products []models.Product) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if !p.IsDeleted {
			out = append(out, p)
		}
	}
	return out
}

// TrashView renvoie la corbeille du back office (is_deleted = true).
// Aucune purge automatique : un produit reste dans la corbeille jusqu'à
// restauration.
func TrashView(products []models.Product) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.IsDeleted {
			out = append(out, p)
		}
	}
	return out
}
