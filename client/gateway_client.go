// Package client is a Go client of the generation gateway. It carries the
// two session state machines the web front-ends implement: the talking-head
// generation session and the standalone text-to-speech session.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/rajesharyain/magination/domain"
	"github.com/rajesharyain/magination/infrastructure/gin_interface/dto"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// Upload sends an image as the multipart `image` field and returns its
// retrieval URL.
func (c *Client) Upload(ctx context.Context, content []byte, filename string) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(content); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/api/upload", &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var res dto.UploadResponse
	if err := c.do(req, &res); err != nil {
		return "", err
	}

	return res.Url, nil
}

func (c *Client) GenerateVoice(ctx context.Context, prompt string) (string, error) {
	var res dto.GenerateVoiceResponse
	err := c.postJSON(ctx, "/api/generate-voice", dto.GenerateVoiceRequest{Prompt: prompt}, &res)
	if err != nil {
		return "", err
	}
	return res.AudioUrl, nil
}

func (c *Client) Animate(ctx context.Context, imageURL, audioURL string) (string, error) {
	var res dto.AnimateResponse
	err := c.postJSON(ctx, "/api/animate", dto.AnimateRequest{
		ImageUrl: imageURL,
		AudioUrl: audioURL,
	}, &res)
	if err != nil {
		return "", err
	}
	return res.VideoUrl, nil
}

func (c *Client) Languages(ctx context.Context) (map[string]string, error) {
	var res map[string]string
	if err := c.getJSON(ctx, "/api/languages", &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) Emotions(ctx context.Context) (map[string]domain.EmotionProfile, error) {
	var res map[string]domain.EmotionProfile
	if err := c.getJSON(ctx, "/api/emotions", &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) GenerateAudio(ctx context.Context, req dto.GenerateAudioRequest) (string, error) {
	var res dto.GenerateAudioResponse
	if err := c.postJSON(ctx, "/api/generate-audio", req, &res); err != nil {
		return "", err
	}
	if !res.Success {
		return "", fmt.Errorf("audio generation did not succeed")
	}
	return res.AudioUrl, nil
}

func (c *Client) postJSON(ctx context.Context, path string, reqBody interface{}, out interface{}) error {
	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+path, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+path, nil)
	if err != nil {
		return err
	}

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = res.Body.Close()
	}()

	payload, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode != http.StatusOK {
		var apiErr dto.ErrorResponse
		if unmarshalErr := json.Unmarshal(payload, &apiErr); unmarshalErr == nil && apiErr.Error != "" {
			return fmt.Errorf("%s: %s", req.URL.Path, apiErr.Error)
		}
		return fmt.Errorf("%s returned status %d", req.URL.Path, res.StatusCode)
	}

	return json.Unmarshal(payload, out)
}
