package core

import (
	"sort"

	"github.com/IvanShishkin/collider/internal/filesystem"
	"github.com/IvanShishkin/collider/pkg/models"
)

// Classify groups records by lower-cased file name and sorts every group of
// two or more into conflicts (differing digests) or duplicates (one digest).
// Records keep discovery order within a group.
func Classify(records []*models.FileRecord) *models.Classification {
	groups := make(map[string][]*models.FileRecord)
	for _, r := range records {
		groups[r.LowerName] = append(groups[r.LowerName], r)
	}

	result := models.NewClassification()
	for name, members := range groups {
		if len(members) < 2 {
			continue
		}

		sorted := make([]*models.FileRecord, len(members))
		copy(sorted, members)
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Seq < sorted[j].Seq })

		distinct := make(map[string]struct{})
		for _, r := range sorted {
			distinct[r.Hash] = struct{}{}
		}

		kind := models.KindDuplicate
		if len(distinct) > 1 {
			kind = models.KindConflict
		}

		result.Add(&models.CollisionGroup{
			Filename:       name,
			Extension:      filesystem.GetExtension(name),
			Kind:           kind,
			DistinctHashes: len(distinct),
			Records:        sorted,
		})
	}

	return result
}
