package cache

import (
	"sync"
	"time"

	"github.com/velora-commerce/velora-storefront/models"
)

const TTL = 5 * time.Minute

// ── Category tree cache ──────────────────────────────────────────────────────

type treeEntry struct {
	parents   []models.StorefrontCategory
	fetchedAt time.Time
}

var (
	treeMu    sync.RWMutex
	treeCache *treeEntry
)

func GetCategoryTree() ([]models.StorefrontCategory, bool) {
	treeMu.RLock()
	defer treeMu.RUnlock()
	if treeCache != nil && time.Since(treeCache.fetchedAt) < TTL {
		return treeCache.parents, true
	}
	return nil, false
}

func SetCategoryTree(parents []models.StorefrontCategory) {
	treeMu.Lock()
	defer treeMu.Unlock()
	treeCache = &treeEntry{parents: parents, fetchedAt: time.Now()}
}

// InvalidateCategoryTree drops the cached tree. Product writes shift the
// per-category product counts, so the admin product controllers call this.
func InvalidateCategoryTree() {
	treeMu.Lock()
	defer treeMu.Unlock()
	treeCache = nil
}

// ── Content section cache ────────────────────────────────────────────────────
// Keyed by section URL key ("hero-banners", "best-sellers", ...). Invalidated
// by the admin content controllers on every create/update/delete.

type sectionEntry struct {
	data      any
	fetchedAt time.Time
}

var (
	sectionMu    sync.RWMutex
	sectionCache = make(map[string]*sectionEntry)
)

func GetSection(key string) (any, bool) {
	sectionMu.RLock()
	defer sectionMu.RUnlock()
	if entry, ok := sectionCache[key]; ok && time.Since(entry.fetchedAt) < TTL {
		return entry.data, true
	}
	return nil, false
}

func SetSection(key string, data any) {
	sectionMu.Lock()
	defer sectionMu.Unlock()
	sectionCache[key] = &sectionEntry{data: data, fetchedAt: time.Now()}
}

// InvalidateContent drops every cached section (call on any content mutation).
func InvalidateContent() {
	sectionMu.Lock()
	defer sectionMu.Unlock()
	sectionCache = make(map[string]*sectionEntry)
}
