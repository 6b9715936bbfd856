package catalog

import (
	"sort"

	"fashion_store_back_end/internal/models"
)

// Merge combine les deux jeux en une liste ordonnée : bestsellers d'abord,
// puis date décroissante. Tri stable — à clé égale, l'ordre d'entrée est
// conservé. Fonction pure, recalculée à chaque lecture.
func Merge(static, dynamic []models.Product) []models.Product {
	all := make([]models.Product, 0, len(static)+len(dynamic))
	all = append(all, static...)
	all = append(all, dynamic...)

	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Bestseller != all[j].Bestseller {
			return all[i].Bestseller
		}
		return all[i].Date > all[j].Date
	})

	return all
}
