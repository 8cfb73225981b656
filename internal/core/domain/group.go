package domain

import "strings"

// FolderGroup holds the classified assets of one run keyed by their source
// folder, preserving a deterministic folder iteration order. It is built
// once by the classifier and read-only afterward.
type FolderGroup struct {
	folders []string
	assets  map[string][]ImageAsset
}

// NewFolderGroup returns an empty group.
func NewFolderGroup() *FolderGroup {
	return &FolderGroup{assets: make(map[string][]ImageAsset)}
}

// Add appends assets under the given folder, registering the folder on
// first use. Folder iteration order is insertion order; the classifier
// inserts folders in sorted path order so runs are reproducible.
func (g *FolderGroup) Add(folder string, assets ...ImageAsset) {
	if _, ok := g.assets[folder]; !ok {
		g.folders = append(g.folders, folder)
	}
	g.assets[folder] = append(g.assets[folder], assets...)
}

// Folders returns the folder names in iteration order.
func (g *FolderGroup) Folders() []string {
	return g.folders
}

// In returns the assets of one folder in their classified order.
func (g *FolderGroup) In(folder string) []ImageAsset {
	return g.assets[folder]
}

// ByKind returns every asset whose category kind matches, in folder
// iteration order.
func (g *FolderGroup) ByKind(kind Kind) []ImageAsset {
	var out []ImageAsset
	for _, f := range g.folders {
		for _, a := range g.assets[f] {
			if a.Category.Kind == kind {
				out = append(out, a)
			}
		}
	}
	return out
}

// ByCategory returns every asset matching both kind and size.
func (g *FolderGroup) ByCategory(c Category) []ImageAsset {
	var out []ImageAsset
	for _, f := range g.folders {
		for _, a := range g.assets[f] {
			if a.Category == c {
				out = append(out, a)
			}
		}
	}
	return out
}

// FoldersByKind returns the folders that contain at least one asset of the
// given kind, in iteration order.
func (g *FolderGroup) FoldersByKind(kind Kind) []string {
	var out []string
	for _, f := range g.folders {
		for _, a := range g.assets[f] {
			if a.Category.Kind == kind {
				out = append(out, f)
				break
			}
		}
	}
	return out
}

// Disclaimers returns every disclaimer-role asset repo-wide in folder
// iteration order. These are excluded from normal section content and
// routed to the Full-ISI aggregator.
func (g *FolderGroup) Disclaimers() []ImageAsset {
	var out []ImageAsset
	for _, f := range g.folders {
		for _, a := range g.assets[f] {
			if a.Role == RoleDisclaimer {
				out = append(out, a)
			}
		}
	}
	return out
}

// Empty reports whether the group holds no assets at all.
func (g *FolderGroup) Empty() bool {
	for _, f := range g.folders {
		if len(g.assets[f]) > 0 {
			return false
		}
	}
	return true
}

// HasVideoFolder reports whether any folder classified as a video-frames
// folder is present.
func (g *FolderGroup) HasVideoFolder() bool {
	for _, f := range g.folders {
		if strings.Contains(strings.ToLower(f), "video") {
			return true
		}
	}
	return false
}
