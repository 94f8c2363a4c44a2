package marketing

import (
	"strings"
	"time"

	"blackstone_back_end/internal/models"
)

// DisplayDelay est le délai fixe entre l'arrivée sur la page et l'affichage
// de la modale, renvoyé au client avec le contenu
const DisplayDelay = 3 * time.Second

// Routes où la modale est autorisée : accueil, produits et catégories
// (sous-routes comprises)
var allowedPrefixes = []string{"/products", "/categories"}

// ShouldDisplay décide de la présentation de la modale promotionnelle.
// Le drapeau "déjà abonné" reste détenu par le client (local storage) et
// est transmis tel quel : c'est un garde-fou de présentation, pas une
// mesure de sécurité.
func ShouldDisplay(cfg models.MarketingModalConfig, path string, subscribed bool) bool {
	if !cfg.Enabled || subscribed {
		return false
	}
	return RouteAllowed(path)
}

// RouteAllowed vérifie l'appartenance à la liste blanche de routes
func RouteAllowed(path string) bool {
	if path == "/" || path == "" {
		return true
	}
	for _, prefix := range allowedPrefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}
