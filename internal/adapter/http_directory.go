package adapter

import (
	"context"
	"fmt"
	"net/url"

	"github.com/go-resty/resty/v2"

	"github.com/andreaprogra/rapport-vocal/internal/config"
	"github.com/andreaprogra/rapport-vocal/internal/logger"
)

const gvizBaseURL = "https://docs.google.com/spreadsheets/d"

type httpDirectoryClient struct {
	client *resty.Client
	format config.DirectoryFormat

	logger *logger.Logger
}

// NewHTTPDirectoryClient constructs a [DirectoryClient] that reads the user
// sheet through the public gviz export endpoint. The sheet must be shared as
// readable by link; no credential is sent.
func NewHTTPDirectoryClient(cfg config.Directory, logger *logger.Logger) (DirectoryClient, error) {
	if cfg.SheetID == "" {
		return nil, fmt.Errorf("directory client: sheet id is required")
	}

	out := "json"
	if cfg.Format == config.FormatCSV {
		out = "csv"
	}
	exportURL := fmt.Sprintf("%s/%s/gviz/tq?tqx=out:%s&sheet=%s",
		gvizBaseURL, url.PathEscape(cfg.SheetID), out, url.QueryEscape(cfg.SheetName))

	client := resty.New().
		SetBaseURL(exportURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpDirectoryClient{client: client, format: cfg.Format, logger: logger}, nil
}

// FetchTable implements [DirectoryClient]. It GETs the sheet export and
// returns the raw body. Decoding is left to the caller because the gviz
// endpoint wraps its JSON in a JSONP envelope that the parser strips.
func (c *httpDirectoryClient) FetchTable(ctx context.Context) ([]byte, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get("")
	if err != nil {
		return nil, fmt.Errorf("directory fetch request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("func", "httpDirectoryClient.FetchTable").
		Str("format", string(c.format)).
		Int("bytes", len(resp.Body())).
		Msg("fetched user sheet")

	return resp.Body(), nil
}
