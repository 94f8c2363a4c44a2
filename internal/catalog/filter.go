package catalog

import (
	"strings"

	"blackstone_back_end/internal/models"
)

// All est la valeur sentinelle qui désactive le filtre catégorie / sous-catégorie
const All = "All"

// Criteria regroupe les filtres du catalogue. Chaque champ est
// indépendamment activable ; la valeur zéro ne filtre rien.
type Criteria struct {
	Query       string   // recherche libre, insensible à la casse (nom + catégorie)
	Category    string   // correspondance exacte, "All" ou vide = pas de filtre
	SubCategory string   // correspondance exacte, "All" ou vide = pas de filtre
	HotOnly     bool     // uniquement les produits avec prix barré > prix
	MinPrice    *float64 // borne basse incluse
	MaxPrice    *float64 // borne haute incluse
}

// Filter applique les critères en conjonction (ET) sur la liste complète.
// Le résultat est une sous-séquence de l'entrée : l'ordre relatif est préservé.
// Un résultat vide renvoie une slice vide, jamais nil, pour que le client
// puisse distinguer "aucun résultat" d'une réponse absente.
func Filter(products []models.Product, crit Criteria) []models.Product {
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if Matches(p, crit) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Matches vérifie un produit contre l'ensemble des critères
func Matches(p models.Product, crit Criteria) bool {
	if crit.Query != "" {
		if !containsIgnoreCase(p.Name, crit.Query) && !containsIgnoreCase(p.Category, crit.Query) {
			return false
		}
	}
	if crit.Category != "" && crit.Category != All && p.Category != crit.Category {
		return false
	}
	if crit.SubCategory != "" && crit.SubCategory != All && p.SubCategory != crit.SubCategory {
		return false
	}
	if crit.HotOnly && !p.IsHotDeal() {
		return false
	}
	if crit.MinPrice != nil && p.Price < *crit.MinPrice {
		return false
	}
	if crit.MaxPrice != nil && p.Price > *crit.MaxPrice {
		return false
	}
	return true
}

// HotProducts renvoie exactement les produits en promotion
// (original_price présent et strictement supérieur à price)
func HotProducts(products []models.Product) []models.Product {
	return Filter(products, Criteria{HotOnly: true})
}

// Helper pour recherche insensible à la casse
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
