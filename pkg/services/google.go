package services

import (
	"context"
	"fmt"

	"google.golang.org/api/docs/v1"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const (
	scopeSpreadsheetsReadonly = "https://www.googleapis.com/auth/spreadsheets.readonly"
	scopeDocumentsReadonly    = "https://www.googleapis.com/auth/documents.readonly"
)

type sheetsReader struct {
	svc *sheets.Service
}

// NewSheetsReader builds a RangeReader over the Sheets API using a service
// account key file with readonly scope.
func NewSheetsReader(ctx context.Context, keyFile string) (RangeReader, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(keyFile),
		option.WithScopes(scopeSpreadsheetsReadonly),
	)
	if err != nil {
		return nil, fmt.Errorf("sheets client: %w", err)
	}
	return &sheetsReader{svc: svc}, nil
}

func (r *sheetsReader) Read(ctx context.Context, spreadsheetID, readRange string) ([][]any, error) {
	resp, err := r.svc.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.Values, nil
}

type docsFetcher struct {
	svc *docs.Service
}

// NewDocsFetcher builds a DocumentFetcher over the Docs API.
func NewDocsFetcher(ctx context.Context, keyFile string) (DocumentFetcher, error) {
	svc, err := docs.NewService(ctx,
		option.WithCredentialsFile(keyFile),
		option.WithScopes(scopeDocumentsReadonly),
	)
	if err != nil {
		return nil, fmt.Errorf("docs client: %w", err)
	}
	return &docsFetcher{svc: svc}, nil
}

func (f *docsFetcher) Fetch(ctx context.Context, docID string) (*docs.Document, error) {
	return f.svc.Documents.Get(docID).Context(ctx).Do()
}
