package service

import (
	"golang.org/x/exp/maps"
	"math/rand"
	"slices"

	"github.com/homebudget/backend/internal/models"
)

// The reserved category transfers fall back to when no subcategory was
// picked. Provisioned lazily on the first transfer that needs it.
const (
	transferCategoryGroup = "System"
	transferCategoryName  = "Transfer"
	transferCategoryColor = "#60a5fa"
	systemCategoryGroupID = -1
)

func transferCategory(categories []models.Category) (models.Category, bool) {
	for _, category := range categories {
		if category.Type == models.TypeTransfer &&
			category.Group == transferCategoryGroup &&
			category.Name == transferCategoryName {
			return category, true
		}
	}
	return models.Category{}, false
}

// ensureTransferCategory returns the reserved System/Transfer category,
// creating it when it does not exist yet. A stale cache is reloaded
// before deciding to create, so repeated calls end up with exactly one
// such category.
func (s *Service) ensureTransferCategory() (models.Category, error) {
	if category, ok := transferCategory(s.cache.Load().Categories); ok {
		return category, nil
	}

	if err := s.ReloadCache(); err != nil {
		return models.Category{}, err
	}
	if category, ok := transferCategory(s.cache.Load().Categories); ok {
		return category, nil
	}

	color := transferCategoryColor
	err := s.categories.Create(&models.Category{
		CategoryID: systemCategoryGroupID,
		Group:      transferCategoryGroup,
		Name:       transferCategoryName,
		Type:       models.TypeTransfer,
		ColorHex:   &color,
	})
	if err != nil {
		return models.Category{}, err
	}

	if err := s.ReloadCache(); err != nil {
		return models.Category{}, err
	}
	category, ok := transferCategory(s.cache.Load().Categories)
	if !ok {
		return models.Category{}, ErrNoCategoryForType
	}

	return category, nil
}

// Categories returns the cached category list for pickers.
func (s *Service) Categories() []models.Category {
	return s.cache.Load().Categories
}

// CategoryGroupsByType returns the sorted, deduplicated group names of
// one transaction type.
func (s *Service) CategoryGroupsByType(t models.Type) []string {
	seen := make(map[string]struct{})
	for _, category := range s.cache.Load().Categories {
		if category.Type == t {
			seen[category.Group] = struct{}{}
		}
	}

	groups := maps.Keys(seen)
	slices.Sort(groups)
	return groups
}

// UniqueCategoryGroups returns every group name, sorted.
func (s *Service) UniqueCategoryGroups() []string {
	seen := make(map[string]struct{})
	for _, category := range s.cache.Load().Categories {
		seen[category.Group] = struct{}{}
	}

	groups := maps.Keys(seen)
	slices.Sort(groups)
	return groups
}

// SubcategoryOption is one picker entry.
type SubcategoryOption struct {
	Name string
	ID   int64
}

// SubcategoriesByGroup returns the subcategories of a group, sorted by name.
func (s *Service) SubcategoriesByGroup(group string) []SubcategoryOption {
	var options []SubcategoryOption
	for _, category := range s.cache.Load().Categories {
		if category.Group == group {
			options = append(options, SubcategoryOption{Name: category.Name, ID: category.SubcategoryID})
		}
	}

	slices.SortFunc(options, func(a, b SubcategoryOption) int {
		switch {
		case a.Name < b.Name:
			return -1
		case a.Name > b.Name:
			return 1
		}
		return 0
	})
	return options
}

// AddCategory creates a subcategory. An existing group contributes its
// group id; a new group gets a random one. The (group, name, type)
// triple must be unique.
func (s *Service) AddCategory(group, name string, t models.Type, colorHex string) error {
	if err := s.ReloadCache(); err != nil {
		return err
	}

	groupID := int64(0)
	for _, category := range s.cache.Load().Categories {
		if category.Group == group && category.Name == name && category.Type == t {
			return ErrCategoryExists
		}
		if category.Group == group && groupID == 0 {
			groupID = category.CategoryID
		}
	}
	if groupID == 0 {
		groupID = int64(rand.Intn(90000) + 10000)
	}

	err := s.categories.Create(&models.Category{
		CategoryID: groupID,
		Group:      group,
		Name:       name,
		Type:       t,
		ColorHex:   optional(colorHex),
	})
	if err != nil {
		logErr(err, "add category")
		return err
	}

	return s.ReloadCache()
}

// UpdateCategory overwrites one subcategory's names, type and color.
func (s *Service) UpdateCategory(subcategoryID int64, group, name string, t models.Type, colorHex string) error {
	err := s.categories.Update(subcategoryID, map[string]any{
		"category":    group,
		"subcategory": name,
		"type":        string(t),
		"color_hex":   colorHex,
	})
	if err != nil {
		logErr(err, "update category")
		return err
	}

	return s.ReloadCache()
}

// DeleteCategory removes a subcategory. Restrict mode fails while any
// transaction references it and leaves everything intact; cascade mode
// deletes the referencing transactions first.
func (s *Service) DeleteCategory(subcategoryID int64, cascade bool) error {
	if cascade {
		if err := s.transactions.DeleteWhere("subcategory_fk", subcategoryID); err != nil {
			logErr(err, "delete category")
			return err
		}
	} else {
		count, err := s.transactions.CountWhere("subcategory_fk", subcategoryID)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrCategoryInUse
		}
	}

	if err := s.categories.Delete(subcategoryID); err != nil {
		logErr(err, "delete category")
		return err
	}

	return s.ReloadCache()
}
