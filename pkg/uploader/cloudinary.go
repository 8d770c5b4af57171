package uploader

import (
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// Uploader stores an image and returns a public URL. The rest of the
// system only ever persists the returned URL.
type Uploader interface {
	UploadBase64Image(ctx context.Context, base64Image string, publicID string) (string, error)
}

// CloudinaryUploader posts signed uploads to the Cloudinary image API.
// Configured via CLOUDINARY_CLOUD_NAME, CLOUDINARY_API_KEY,
// CLOUDINARY_API_SECRET, and optionally CLOUDINARY_FOLDER.
type CloudinaryUploader struct {
	cloudName string
	apiKey    string
	apiSecret string
	folder    string
	client    *http.Client
}

func NewCloudinaryUploader() Uploader {
	return &CloudinaryUploader{
		cloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		apiKey:    os.Getenv("CLOUDINARY_API_KEY"),
		apiSecret: os.Getenv("CLOUDINARY_API_SECRET"),
		folder:    os.Getenv("CLOUDINARY_FOLDER"),
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (u *CloudinaryUploader) UploadBase64Image(ctx context.Context, base64Image string, publicID string) (string, error) {
	if base64Image == "" {
		return "", fmt.Errorf("empty image payload")
	}
	if u.cloudName == "" || u.apiKey == "" || u.apiSecret == "" {
		return "", fmt.Errorf("cloudinary credentials are not configured")
	}

	// Accept both raw base64 and data-URI payloads.
	payload := base64Image
	if i := strings.Index(base64Image, ","); i != -1 {
		payload = base64Image[i+1:]
	}

	if u.folder != "" {
		publicID = u.folder + "/" + publicID
	}
	timestamp := fmt.Sprintf("%d", time.Now().Unix())

	// Signed uploads sign the sorted params plus the api secret with SHA1.
	signaturePayload := fmt.Sprintf("public_id=%s&timestamp=%s%s", publicID, timestamp, u.apiSecret)
	signature := fmt.Sprintf("%x", sha1.Sum([]byte(signaturePayload)))

	form := url.Values{}
	form.Add("file", "data:image/jpeg;base64,"+payload)
	form.Add("api_key", u.apiKey)
	form.Add("public_id", publicID)
	form.Add("timestamp", timestamp)
	form.Add("signature", signature)

	endpoint := "https://api.cloudinary.com/v1_1/" + u.cloudName + "/image/upload"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("building upload request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := u.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("posting upload: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("reading upload response: %w", err)
	}
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("upload rejected with status %d: %s", res.StatusCode, string(body))
	}

	var uploadRes struct {
		SecureURL string `json:"secure_url"`
		URL       string `json:"url"`
		Error     struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &uploadRes); err != nil {
		return "", fmt.Errorf("parsing upload response: %w", err)
	}
	if uploadRes.Error.Message != "" {
		return "", fmt.Errorf("upload failed: %s", uploadRes.Error.Message)
	}
	if uploadRes.SecureURL != "" {
		return uploadRes.SecureURL, nil
	}
	return uploadRes.URL, nil
}
