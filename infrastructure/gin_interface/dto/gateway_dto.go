package dto

type UploadResponse struct {
	Url string `json:"url"`
}

type GenerateVoiceRequest struct {
	Prompt string `json:"prompt"`
}

type GenerateVoiceResponse struct {
	AudioUrl string `json:"audioUrl"`
}

type AnimateRequest struct {
	ImageUrl string `json:"imageUrl"`
	AudioUrl string `json:"audioUrl"`
}

type AnimateResponse struct {
	VideoUrl string `json:"videoUrl"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
