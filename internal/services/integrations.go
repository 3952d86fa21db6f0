package services

import (
	"context"
	"io"

	"github.com/localnerve/swipefile/internal/integrations/facebook"
	"github.com/localnerve/swipefile/internal/integrations/gdrive"
)

// DriveClient is one brand's view of Google Drive
type DriveClient interface {
	ListFolder(ctx context.Context, folderID string) ([]gdrive.File, error)
	GetFile(ctx context.Context, fileID string) (gdrive.File, error)
	Open(ctx context.Context, fileID, byteRange string) (*gdrive.Media, error)
	EnsureFolder(ctx context.Context, parentID, name string) (string, error)
	Upload(ctx context.Context, parentID, name, mimeType string, r io.Reader) (gdrive.File, error)
}

// GoogleAuth runs the consent flow and opens per-brand Drive clients
type GoogleAuth interface {
	AuthURL(state string) string
	Exchange(ctx context.Context, code string) (string, error)
	Drive(ctx context.Context, refreshToken string) (DriveClient, error)
}

// InsightsFetcher reads ad-level insights for one ad account
type InsightsFetcher interface {
	AdInsights(ctx context.Context, accessToken, adAccountID string) ([]facebook.AdInsight, error)
}

// Generator produces text and JSON from prompts
type Generator interface {
	GenerateText(ctx context.Context, system, prompt string) (string, error)
	GenerateJSON(ctx context.Context, system, prompt string, out any) error
	Transcribe(ctx context.Context, filename string, r io.Reader) (string, error)
}

// Integrations bundles the optional platform clients; nil members are not configured
type Integrations struct {
	Google   GoogleAuth
	Facebook InsightsFetcher
	AI       Generator
}

// GoogleConnector adapts gdrive.Connector to GoogleAuth
type GoogleConnector struct {
	*gdrive.Connector
}

// Drive opens a Drive client for refreshToken
func (g GoogleConnector) Drive(ctx context.Context, refreshToken string) (DriveClient, error) {
	client, err := g.Connector.Client(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	return client, nil
}
