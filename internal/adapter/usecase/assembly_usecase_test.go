package usecase

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sentivora/mlr-automation/internal/adapter/planwriter"
	"github.com/sentivora/mlr-automation/internal/core/domain"
	"github.com/sentivora/mlr-automation/internal/core/port"
	"github.com/sentivora/mlr-automation/internal/images"
)

type runRepoStub struct {
	inserted []domain.Run
}

func (r *runRepoStub) InsertRun(_ context.Context, run domain.Run) error {
	r.inserted = append(r.inserted, run)
	return nil
}

func (r *runRepoStub) ListRuns(_ context.Context, limit int) ([]domain.Run, error) {
	if limit > len(r.inserted) {
		limit = len(r.inserted)
	}
	return r.inserted[:limit], nil
}

type blobStub struct {
	objects map[string][]byte
	types   map[string]string
}

func newBlobStub() *blobStub {
	return &blobStub{objects: map[string][]byte{}, types: map[string]string{}}
}

func (b *blobStub) Save(_ context.Context, name string, data []byte, contentType string) error {
	b.objects[name] = data
	b.types[name] = contentType
	return nil
}

func (b *blobStub) Fetch(_ context.Context, name string) ([]byte, string, error) {
	data, ok := b.objects[name]
	if !ok {
		return nil, "", port.ErrBlobNotFound
	}
	return data, b.types[name], nil
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func writeUploadZip(t *testing.T, dir string, entries map[string][]byte) string {
	t.Helper()
	path := filepath.Join(dir, "campaign.zip")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	for name, data := range entries {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
	return path
}

func TestProcessUploadEndToEnd(t *testing.T) {
	dir := t.TempDir()
	upload := writeUploadZip(t, dir, map[string][]byte{
		"ctv/shot.png":       encodePNG(t, 320, 180),
		"ott/shot.png":       encodePNG(t, 320, 180),
		"video/frame-01.png": encodePNG(t, 256, 144),
	})

	repo := &runRepoStub{}
	blobs := newBlobStub()
	svc := NewAssemblyUseCase(repo, planwriter.New(), blobs, images.Dimensions, 2, discardLogger())

	res, err := svc.ProcessUpload(context.Background(), upload, "campaign.zip", port.AssemblyConfig{Annotations: port.NoAnnotations})
	require.NoError(t, err)

	require.Equal(t, "campaign.pptx.plan.json", res.OutputName)
	require.Equal(t, 3, res.FolderCount)
	require.True(t, res.VideoFolderFound)
	require.Equal(t, 4, res.SlideCount) // video, ctv, ott, blank full isi

	data, contentType, err := blobs.Fetch(context.Background(), res.OutputName)
	require.NoError(t, err)
	require.Equal(t, "application/json", contentType)

	var plan struct {
		Output string `json:"output"`
		Slides []struct {
			Title string `json:"title"`
		} `json:"slides"`
	}
	require.NoError(t, json.Unmarshal(data, &plan))
	require.Equal(t, "campaign.pptx", plan.Output)
	require.Len(t, plan.Slides, 4)
	require.Equal(t, "VIDEO", plan.Slides[0].Title)
	require.Equal(t, "FULL ISI", plan.Slides[3].Title)

	require.Len(t, repo.inserted, 1)
	require.Equal(t, "campaign.zip", repo.inserted[0].SourceFile)
	require.Equal(t, res.RunID, repo.inserted[0].ID)

	runs, err := svc.ListRuns(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
}

func TestAssembleDeckEmptyFolderMapYieldsBlankISIDeck(t *testing.T) {
	svc := NewAssemblyUseCase(&runRepoStub{}, planwriter.New(), newBlobStub(), images.Dimensions, 1, discardLogger())

	deck, err := svc.AssembleDeck(context.Background(), port.FolderMap{}, port.AssemblyConfig{OutputBaseName: "empty"})
	require.NoError(t, err)
	require.Len(t, deck.Slides, 1)
	require.Equal(t, "FULL ISI", deck.Slides[0].Title)
	require.Empty(t, deck.Slides[0].Images)
}

func TestProcessUploadAllImagesUnreadableStillCompletes(t *testing.T) {
	dir := t.TempDir()
	upload := writeUploadZip(t, dir, map[string][]byte{
		"ctv/broken.png": []byte("not a png"),
	})

	repo := &runRepoStub{}
	blobs := newBlobStub()
	svc := NewAssemblyUseCase(repo, planwriter.New(), blobs, images.Dimensions, 1, discardLogger())

	res, err := svc.ProcessUpload(context.Background(), upload, "campaign.zip", port.AssemblyConfig{})
	require.NoError(t, err)
	require.Equal(t, 1, res.SlideCount) // blank FULL ISI only
	require.Len(t, repo.inserted, 1)

	_, _, err = blobs.Fetch(context.Background(), res.OutputName)
	require.NoError(t, err)
}

func TestProcessUploadNoImagesFails(t *testing.T) {
	dir := t.TempDir()
	upload := writeUploadZip(t, dir, map[string][]byte{
		"notes/readme.txt": []byte("not an image"),
	})

	svc := NewAssemblyUseCase(&runRepoStub{}, planwriter.New(), newBlobStub(), images.Dimensions, 1, discardLogger())
	_, err := svc.ProcessUpload(context.Background(), upload, "campaign.zip", port.AssemblyConfig{})
	require.ErrorIs(t, err, port.ErrNoAssets)
}
