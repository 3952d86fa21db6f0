// client.go
//
// A marketing swipe file, creative production pipeline and ad attribution service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of swipefile.
// swipefile is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// swipefile is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with swipefile.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

// Package gdrive wraps the Drive v3 API behind per-brand refresh tokens.
package gdrive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const (
	FolderMimeType = "application/vnd.google-apps.folder"

	fileFields = "id,name,mimeType,size,thumbnailLink,parents," +
		"imageMediaMetadata(width,height),videoMediaMetadata(width,height,durationMillis)"
	listFields = googleapi.Field("nextPageToken,files(" + fileFields + ")")
)

// File is the subset of Drive metadata the app stores
type File struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	MimeType     string   `json:"mimeType"`
	Size         int64    `json:"size"`
	ThumbnailURL string   `json:"thumbnailUrl,omitempty"`
	Width        int      `json:"width,omitempty"`
	Height       int      `json:"height,omitempty"`
	DurationMs   int64    `json:"durationMs,omitempty"`
	Parents      []string `json:"parents,omitempty"`
}

func (f File) IsFolder() bool { return f.MimeType == FolderMimeType }
func (f File) IsVideo() bool  { return strings.HasPrefix(f.MimeType, "video/") }
func (f File) IsImage() bool  { return strings.HasPrefix(f.MimeType, "image/") }

// Media is an open download, possibly partial
type Media struct {
	Body          io.ReadCloser
	StatusCode    int
	ContentType   string
	ContentLength string
	ContentRange  string
	AcceptRanges  string
}

// Connector holds the OAuth client used for every brand
type Connector struct {
	config *oauth2.Config
}

// NewConnector builds the OAuth configuration for the Drive scope
func NewConnector(clientID, clientSecret, redirectURL string) *Connector {
	return &Connector{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{drive.DriveScope},
			Endpoint:     google.Endpoint,
		},
	}
}

// AuthURL returns the consent screen URL; offline access yields a refresh token
func (c *Connector) AuthURL(state string) string {
	return c.config.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

// Exchange trades an authorization code for a refresh token
func (c *Connector) Exchange(ctx context.Context, code string) (string, error) {
	token, err := c.config.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("google token exchange: %w", err)
	}
	if token.RefreshToken == "" {
		return "", fmt.Errorf("google token exchange returned no refresh token")
	}
	return token.RefreshToken, nil
}

// Client opens a Drive service authorized by refreshToken
func (c *Connector) Client(ctx context.Context, refreshToken string) (*Client, error) {
	ts := c.config.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
	svc, err := drive.NewService(ctx, option.WithHTTPClient(oauth2.NewClient(ctx, ts)))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}
	return &Client{svc: svc}, nil
}

// Client is one brand's Drive session
type Client struct {
	svc *drive.Service
}

// ListFolder returns every direct child of folderID, following pagination
func (c *Client) ListFolder(ctx context.Context, folderID string) ([]File, error) {
	var files []File
	pageToken := ""
	for {
		call := c.svc.Files.List().
			Q(fmt.Sprintf("'%s' in parents and trashed = false", escape(folderID))).
			Fields(listFields).
			PageSize(1000).
			SupportsAllDrives(true).
			IncludeItemsFromAllDrives(true).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		res, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("drive list %s: %w", folderID, err)
		}
		for _, f := range res.Files {
			files = append(files, fromDrive(f))
		}
		if res.NextPageToken == "" {
			return files, nil
		}
		pageToken = res.NextPageToken
	}
}

// GetFile fetches one file's metadata
func (c *Client) GetFile(ctx context.Context, fileID string) (File, error) {
	f, err := c.svc.Files.Get(fileID).
		Fields(googleapi.Field(fileFields)).
		SupportsAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return File{}, fmt.Errorf("drive get %s: %w", fileID, err)
	}
	return fromDrive(f), nil
}

// Open starts a download; byteRange is passed through as the Range header when set
func (c *Client) Open(ctx context.Context, fileID, byteRange string) (*Media, error) {
	call := c.svc.Files.Get(fileID).SupportsAllDrives(true).Context(ctx)
	if byteRange != "" {
		call.Header().Set("Range", byteRange)
	}
	resp, err := call.Download()
	if err != nil {
		return nil, fmt.Errorf("drive download %s: %w", fileID, err)
	}
	return &Media{
		Body:          resp.Body,
		StatusCode:    resp.StatusCode,
		ContentType:   resp.Header.Get("Content-Type"),
		ContentLength: resp.Header.Get("Content-Length"),
		ContentRange:  resp.Header.Get("Content-Range"),
		AcceptRanges:  resp.Header.Get("Accept-Ranges"),
	}, nil
}

// EnsureFolder returns the id of the named child folder, creating it when missing
func (c *Client) EnsureFolder(ctx context.Context, parentID, name string) (string, error) {
	res, err := c.svc.Files.List().
		Q(fmt.Sprintf("mimeType = '%s' and name = '%s' and '%s' in parents and trashed = false",
			FolderMimeType, escape(name), escape(parentID))).
		Fields("files(id)").
		SupportsAllDrives(true).
		IncludeItemsFromAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("drive find folder %s: %w", name, err)
	}
	if len(res.Files) > 0 {
		return res.Files[0].Id, nil
	}

	folder, err := c.svc.Files.Create(&drive.File{
		Name:     name,
		MimeType: FolderMimeType,
		Parents:  []string{parentID},
	}).Fields("id").SupportsAllDrives(true).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("drive create folder %s: %w", name, err)
	}
	return folder.Id, nil
}

// Upload streams r into a new file under parentID
func (c *Client) Upload(ctx context.Context, parentID, name, mimeType string, r io.Reader) (File, error) {
	f, err := c.svc.Files.Create(&drive.File{
		Name:     name,
		MimeType: mimeType,
		Parents:  []string{parentID},
	}).
		Media(r, googleapi.ContentType(mimeType)).
		Fields(googleapi.Field(fileFields)).
		SupportsAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return File{}, fmt.Errorf("drive upload %s: %w", name, err)
	}
	return fromDrive(f), nil
}

// StatusCode extracts the HTTP status of a Drive API error, 0 when unknown
func StatusCode(err error) int {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return 0
}

func fromDrive(f *drive.File) File {
	file := File{
		ID:           f.Id,
		Name:         f.Name,
		MimeType:     f.MimeType,
		Size:         f.Size,
		ThumbnailURL: f.ThumbnailLink,
		Parents:      f.Parents,
	}
	if m := f.ImageMediaMetadata; m != nil {
		file.Width, file.Height = int(m.Width), int(m.Height)
	}
	if m := f.VideoMediaMetadata; m != nil {
		file.Width, file.Height = int(m.Width), int(m.Height)
		file.DurationMs = m.DurationMillis
	}
	return file
}

// escape quotes a value for a Drive query string
func escape(v string) string {
	return strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(v)
}
