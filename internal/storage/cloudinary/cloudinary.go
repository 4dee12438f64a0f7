package cloudinary

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/happydigitalmarketings/MangaiyarFreshFoods/internal/storage"
	"github.com/happydigitalmarketings/MangaiyarFreshFoods/pkg/httpclient"
)

// APIBase is the Cloudinary upload API base URL.
const APIBase = "https://api.cloudinary.com/v1_1"

// Config holds Cloudinary credentials.
type Config struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}

// Storage implements storage.Storage against the Cloudinary HTTP upload API
// using signed requests.
type Storage struct {
	cfg     Config
	client  *httpclient.Client
	apiBase string
	now     func() time.Time
}

// New creates a Cloudinary-backed storage.
func New(cfg Config, client *httpclient.Client) *Storage {
	return &Storage{
		cfg:     cfg,
		client:  client,
		apiBase: APIBase,
		now:     time.Now,
	}
}

type uploadResponse struct {
	PublicID  string `json:"public_id"`
	SecureURL string `json:"secure_url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload sends the file to Cloudinary and returns its public id and URL.
func (s *Storage) Upload(ctx context.Context, input *storage.UploadInput) (*storage.UploadResult, error) {
	timestamp := strconv.FormatInt(s.now().Unix(), 10)

	params := map[string]string{
		"timestamp": timestamp,
	}
	if s.cfg.Folder != "" {
		params["folder"] = s.cfg.Folder
	}

	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	for k, v := range params {
		if err := w.WriteField(k, v); err != nil {
			return nil, fmt.Errorf("write form field %s: %w", k, err)
		}
	}
	if err := w.WriteField("api_key", s.cfg.APIKey); err != nil {
		return nil, fmt.Errorf("write api key: %w", err)
	}
	if err := w.WriteField("signature", s.sign(params)); err != nil {
		return nil, fmt.Errorf("write signature: %w", err)
	}

	part, err := w.CreateFormFile("file", input.Key)
	if err != nil {
		return nil, fmt.Errorf("create file part: %w", err)
	}
	if _, err := io.Copy(part, input.Data); err != nil {
		return nil, fmt.Errorf("copy file data: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s/image/upload", s.apiBase, s.cfg.CloudName)

	resp, err := s.client.Post(ctx, endpoint, w.FormDataContentType(), &body)
	if err != nil {
		return nil, fmt.Errorf("cloudinary upload: %w", err)
	}
	defer resp.Body.Close()

	var result uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode cloudinary response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := result.Error.Message
		if msg == "" {
			msg = resp.Status
		}
		return nil, fmt.Errorf("cloudinary upload failed: %s", msg)
	}

	return &storage.UploadResult{
		Key: result.PublicID,
		URL: result.SecureURL,
	}, nil
}

// Delete removes an uploaded image by its public id.
func (s *Storage) Delete(ctx context.Context, key string) error {
	timestamp := strconv.FormatInt(s.now().Unix(), 10)

	params := map[string]string{
		"public_id": key,
		"timestamp": timestamp,
	}

	form := url.Values{}
	for k, v := range params {
		form.Set(k, v)
	}
	form.Set("api_key", s.cfg.APIKey)
	form.Set("signature", s.sign(params))

	endpoint := fmt.Sprintf("%s/%s/image/destroy", s.apiBase, s.cfg.CloudName)

	resp, err := s.client.Post(ctx, endpoint, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("cloudinary destroy: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cloudinary destroy failed: %s", resp.Status)
	}

	return nil
}

// sign computes the Cloudinary request signature: the SHA-1 hex digest of the
// alphabetically sorted parameters followed by the API secret.
func (s *Storage) sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}

	h := sha1.Sum([]byte(strings.Join(pairs, "&") + s.cfg.APISecret)) // #nosec G401 -- SHA-1 is what the Cloudinary API signs with
	return hex.EncodeToString(h[:])
}
