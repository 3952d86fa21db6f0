package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/localnerve/swipefile/internal/integrations/facebook"
	"github.com/localnerve/swipefile/internal/integrations/gdrive"
)

// fakeDrive is an in-memory folder tree keyed by folder id
type fakeDrive struct {
	mu       sync.Mutex
	folders  map[string][]gdrive.File
	failing  map[string]bool
	uploads  []string
	nextID   int
	lastOpen string
}

func newFakeDrive() *fakeDrive {
	return &fakeDrive{folders: map[string][]gdrive.File{}, failing: map[string]bool{}}
}

func (d *fakeDrive) add(parent string, file gdrive.File) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.folders[parent] = append(d.folders[parent], file)
}

func (d *fakeDrive) ListFolder(_ context.Context, folderID string) ([]gdrive.File, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.failing[folderID] {
		return nil, fmt.Errorf("listing %s failed", folderID)
	}
	return append([]gdrive.File(nil), d.folders[folderID]...), nil
}

func (d *fakeDrive) GetFile(_ context.Context, fileID string) (gdrive.File, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, files := range d.folders {
		for _, f := range files {
			if f.ID == fileID {
				return f, nil
			}
		}
	}
	return gdrive.File{}, fmt.Errorf("file %s not found", fileID)
}

func (d *fakeDrive) Open(_ context.Context, fileID, byteRange string) (*gdrive.Media, error) {
	d.mu.Lock()
	d.lastOpen = byteRange
	d.mu.Unlock()
	return &gdrive.Media{Body: io.NopCloser(strings.NewReader("frames")), StatusCode: 206, ContentType: "video/mp4"}, nil
}

func (d *fakeDrive) EnsureFolder(_ context.Context, parentID, name string) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, f := range d.folders[parentID] {
		if f.IsFolder() && f.Name == name {
			return f.ID, nil
		}
	}
	d.nextID++
	id := fmt.Sprintf("folder-%d", d.nextID)
	d.folders[parentID] = append(d.folders[parentID], gdrive.File{ID: id, Name: name, MimeType: gdrive.FolderMimeType})
	return id, nil
}

func (d *fakeDrive) Upload(_ context.Context, parentID, name, mimeType string, r io.Reader) (gdrive.File, error) {
	if _, err := io.Copy(io.Discard, r); err != nil {
		return gdrive.File{}, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.nextID++
	file := gdrive.File{ID: fmt.Sprintf("upload-%d", d.nextID), Name: name, MimeType: mimeType}
	d.folders[parentID] = append(d.folders[parentID], file)
	d.uploads = append(d.uploads, name)
	return file, nil
}

// fakeGoogle hands out one shared fakeDrive
type fakeGoogle struct {
	drive *fakeDrive
}

func (g *fakeGoogle) AuthURL(state string) string {
	return "https://accounts.example/auth?state=" + state
}

func (g *fakeGoogle) Exchange(_ context.Context, code string) (string, error) {
	if code == "bad" {
		return "", fmt.Errorf("invalid_grant")
	}
	return "refresh-" + code, nil
}

func (g *fakeGoogle) Drive(context.Context, string) (DriveClient, error) {
	return g.drive, nil
}

// fakeFetcher returns canned insights per ad account
type fakeFetcher struct {
	insights map[string][]facebook.AdInsight
	err      map[string]error
}

func (f *fakeFetcher) AdInsights(_ context.Context, _ string, adAccountID string) ([]facebook.AdInsight, error) {
	if err := f.err[adAccountID]; err != nil {
		return nil, err
	}
	return f.insights[adAccountID], nil
}

// fakeGenerator records prompts and answers with canned output
type fakeGenerator struct {
	text       string
	json       string
	transcript string
	prompts    []string
	heard      []byte
}

func (g *fakeGenerator) GenerateText(_ context.Context, _, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	return g.text, nil
}

func (g *fakeGenerator) GenerateJSON(_ context.Context, _, prompt string, out any) error {
	g.prompts = append(g.prompts, prompt)
	return json.Unmarshal([]byte(g.json), out)
}

func (g *fakeGenerator) Transcribe(_ context.Context, _ string, r io.Reader) (string, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	g.heard = body
	return g.transcript, nil
}
