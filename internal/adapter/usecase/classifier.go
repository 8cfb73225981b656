package usecase

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/sentivora/mlr-automation/internal/core/domain"
	"github.com/sentivora/mlr-automation/internal/core/port"
)

// DimensionProber reads the pixel dimensions of an image file. Injected so
// the engine stays testable without fixture files on disk.
type DimensionProber func(path string) (width, height int, err error)

// probeWorkers bounds concurrent dimension reads so large archives do not
// exhaust file descriptors.
const probeWorkers = 8

// sizeTokens are the sub-size markers recognised inside in-frame folder
// paths.
var sizeTokens = []string{
	domain.Size160x600,
	domain.Size300x250,
	domain.Size300x600,
	domain.Size728x90,
	domain.Size970x250,
}

func sizeFromPath(lower string) string {
	for _, s := range sizeTokens {
		if strings.Contains(lower, s) {
			return s
		}
	}
	return ""
}

// ClassifyPath maps a raw folder path to its canonical category by ordered
// keyword matching against the lower-cased path. First match wins; no
// match yields Unclassified. The function is pure and total.
func ClassifyPath(folder string) domain.Category {
	lower := strings.ToLower(strings.ReplaceAll(folder, "\\", "/"))
	engaged := strings.Contains(lower, "engaged")

	switch {
	case strings.Contains(lower, "vdxdesktopexpandable"):
		if engaged {
			return cat(domain.KindDesktopExpandableEngaged, "")
		}
		return cat(domain.KindDesktopExpandableTeaser, "")
	case strings.Contains(lower, "vdxmobileexpandable"):
		if engaged {
			return cat(domain.KindMobileExpandableEngaged, "")
		}
		return cat(domain.KindMobileExpandableTeaser, "")
	case strings.Contains(lower, "vdxdesktopinframe"):
		return cat(domain.KindDesktopInframe, sizeFromPath(lower))
	case strings.Contains(lower, "vdxmobileinframe"):
		return cat(domain.KindMobileInframe, sizeFromPath(lower))
	case strings.Contains(lower, "vdxdesktopinstream"), strings.Contains(lower, "vdxinstream"):
		return cat(domain.KindDesktopInstream, "")
	case strings.Contains(lower, "vdxmobileinstream"):
		return cat(domain.KindMobileInstream, "")
	case strings.Contains(lower, "ctv"):
		return cat(domain.KindCTV, "")
	case strings.Contains(lower, "ott"):
		return cat(domain.KindOTT, "")
	case strings.Contains(lower, "video"):
		return cat(domain.KindVideo, "")
	default:
		return cat(domain.KindUnclassified, "")
	}
}

// RoleForFile assigns the semantic role by exact lower-cased filename
// match. Anything unrecognised is RoleOther.
func RoleForFile(name string) domain.Role {
	base := strings.ToLower(name)
	if i := strings.LastIndexAny(base, "/\\"); i >= 0 {
		base = base[i+1:]
	}
	switch base {
	case "teaser.png":
		return domain.RoleTeaser
	case "mainunit.png":
		return domain.RoleMainUnit
	case "vpm.png":
		return domain.RoleVideoPlayerMode
	case "teaser-disclaimer.png", "mainunit-disclaimer.png":
		return domain.RoleDisclaimer
	default:
		return domain.RoleOther
	}
}

// BuildFolderGroup classifies the raw folder map into a FolderGroup.
// Dimension reads run on a bounded worker pool; an unreadable image is
// dropped with a warning, never failing the run. Folders are inserted in
// sorted path order so output is deterministic.
func BuildFolderGroup(ctx context.Context, folders port.FolderMap, probe DimensionProber, logger *slog.Logger) (*domain.FolderGroup, error) {
	names := make([]string, 0, len(folders))
	for f := range folders {
		names = append(names, f)
	}
	sort.Strings(names)

	type probed struct {
		w, h int
		err  error
	}
	results := make(map[string]probed, len(folders))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(probeWorkers)
	for _, folder := range names {
		for _, path := range folders[folder] {
			path := path
			g.Go(func() error {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				w, h, err := probe(path)
				mu.Lock()
				results[path] = probed{w, h, err}
				mu.Unlock()
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	group := domain.NewFolderGroup()
	for _, folder := range names {
		category := ClassifyPath(folder)
		paths := append([]string(nil), folders[folder]...)
		sort.Slice(paths, func(i, j int) bool {
			return strings.ToLower(paths[i]) < strings.ToLower(paths[j])
		})
		for _, path := range paths {
			r := results[path]
			if r.err != nil {
				logger.Warn("dropping unreadable image",
					slog.String("path", path), slog.Any("error", r.err))
				continue
			}
			group.Add(folder, domain.ImageAsset{
				Path:         path,
				SourceFolder: strings.ReplaceAll(folder, "\\", "/"),
				Role:         RoleForFile(path),
				Category:     category,
				PixelWidth:   r.w,
				PixelHeight:  r.h,
			})
		}
		if _, ok := folders[folder]; ok && len(group.In(folder)) == 0 && len(folders[folder]) > 0 {
			logger.Warn("folder had no readable images", slog.String("folder", folder))
		}
	}
	return group, nil
}
