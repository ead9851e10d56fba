// Copyright 2026 the Scitour authors. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package bio

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
)

// Open opens the named sequence input for reading. HTTP and HTTPS
// URLs are fetched over the network; everything else is passed to the
// file package, which handles local paths as well as any registered
// remote implementations (e.g., S3).
func Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if strings.HasPrefix(name, "http://") || strings.HasPrefix(name, "https://") {
		req, err := http.NewRequest("GET", name, nil)
		if err != nil {
			return nil, errors.E("bio.Open", name, err)
		}
		resp, err := http.DefaultClient.Do(req.WithContext(ctx))
		if err != nil {
			return nil, errors.E("bio.Open", name, errors.Net, err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, errors.E("bio.Open", name, errors.Net, fmt.Sprintf("status %s", resp.Status))
		}
		return resp.Body, nil
	}
	f, err := file.Open(ctx, name)
	if err != nil {
		return nil, errors.E("bio.Open", name, err)
	}
	return &fileReadCloser{Reader: f.Reader(ctx), ctx: ctx, file: f}, nil
}

// A fileReadCloser adapts a file.File to io.ReadCloser, forwarding
// the open context to Close.
type fileReadCloser struct {
	io.Reader
	ctx  context.Context
	file file.File
}

func (f *fileReadCloser) Close() error {
	return f.file.Close(f.ctx)
}
