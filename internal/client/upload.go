package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"

	"auction-storefront/internal/auctionerrors"

	"github.com/c2h5oh/datasize"
)

const uploadField = "file"

// checkUpload rejects empty or oversized files before any request is built
func (c *Client) checkUpload(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("client: %w", auctionerrors.ErrMissingFile)
	}
	if size := datasize.ByteSize(len(data)); size > c.maxUpload {
		return fmt.Errorf("client: %w: %s > %s", auctionerrors.ErrFileTooLarge, size.HR(), c.maxUpload.HR())
	}
	return nil
}

// upload posts data as the multipart field "file" and decodes the JSON summary into out
func (c *Client) upload(ctx context.Context, path, filename string, data []byte, out any) error {
	if err := c.checkUpload(data); err != nil {
		return err
	}
	if filename == "" {
		filename = "upload.csv"
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(uploadField, filename)
	if err != nil {
		return fmt.Errorf("client: failed to create form file: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return fmt.Errorf("client: failed to copy file data: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("client: failed to close multipart writer: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, body, writer.FormDataContentType())
	if err != nil {
		return err
	}
	respBody, err := c.send(req)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("client: failed to parse import summary: %w", err)
	}
	return nil
}
