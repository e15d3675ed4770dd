package out

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"easeed/internal/modules/submission/domain"
	submissionout "easeed/internal/modules/submission/port/out"
	apperrors "easeed/internal/platform/errors"
)

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 32 << 20

type HTTPDispatcher struct {
	baseURL string
	client  *http.Client
}

func NewHTTPDispatcher(baseURL string, timeout time.Duration) submissionout.Dispatcher {
	return NewHTTPDispatcherWithClient(baseURL, &http.Client{Timeout: timeout})
}

func NewHTTPDispatcherWithClient(baseURL string, client *http.Client) *HTTPDispatcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPDispatcher{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

func (d *HTTPDispatcher) Send(ctx context.Context, req domain.Request) (string, error) {
	body, contentType, err := encodeBody(req)
	if err != nil {
		return "", err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, d.baseURL+req.Endpoint, body)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", contentType)
	httpReq.Header.Set("Accept", "application/json")

	resp, err := d.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: post %s: %v", apperrors.ErrNetwork, req.Endpoint, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", apperrors.ErrNetwork, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &domain.ServerError{Status: resp.StatusCode, Detail: decodeDetail(raw)}
	}

	var payload struct {
		Result *string `json:"result"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return "", fmt.Errorf("%w: decode body: %v", apperrors.ErrMalformedResponse, err)
	}
	if payload.Result == nil {
		return "", fmt.Errorf("%w: body has no string result", apperrors.ErrMalformedResponse)
	}
	return *payload.Result, nil
}

// decodeDetail returns the "detail" field only when it is a string. FastAPI validation
// errors carry a list there, which is not a usable message.
func decodeDetail(raw []byte) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil || len(payload.Detail) == 0 {
		return ""
	}
	var detail string
	if err := json.Unmarshal(payload.Detail, &detail); err != nil {
		return ""
	}
	return strings.TrimSpace(detail)
}

func encodeBody(req domain.Request) (io.Reader, string, error) {
	if req.Encoding == domain.EncodingURLEncoded {
		form := url.Values{}
		form.Set(req.Field, req.Text)
		return strings.NewReader(form.Encode()), string(domain.EncodingURLEncoded), nil
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if req.File == nil {
		if err := w.WriteField(req.Field, req.Text); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", req.Field, err)
		}
	} else if err := writeFilePart(w, req.Field, *req.File); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart body: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func writeFilePart(w *multipart.Writer, field string, ref domain.FileRef) error {
	f, err := os.Open(ref.Path)
	if err != nil {
		return fmt.Errorf("open %s: %w", ref.Path, err)
	}
	defer f.Close()

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(field), quoteEscaper.Replace(ref.Name)))
	h.Set("Content-Type", detectContentType(ref.Path))
	part, err := w.CreatePart(h)
	if err != nil {
		return fmt.Errorf("create file part: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("copy %s: %w", ref.Path, err)
	}
	return nil
}

// detectContentType sniffs the file content first and falls back to the extension.
func detectContentType(path string) string {
	if mt, err := mimetype.DetectFile(path); err == nil && !mt.Is("application/octet-stream") {
		return mt.String()
	}
	if byExt := mime.TypeByExtension(strings.ToLower(filepath.Ext(path))); byExt != "" {
		return byExt
	}
	return "application/octet-stream"
}
