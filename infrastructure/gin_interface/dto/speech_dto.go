package dto

import "github.com/rajesharyain/magination/domain"

type GenerateAudioRequest struct {
	Text     string  `json:"text"`
	Language string  `json:"language"`
	Emotion  string  `json:"emotion"`
	Speed    float64 `json:"speed"`
}

type GenerateAudioResponse struct {
	Success  bool   `json:"success"`
	AudioUrl string `json:"audioUrl"`
}

type ProcessScriptResponse struct {
	Success    bool                `json:"success"`
	AudioFiles []domain.SceneAudio `json:"audioFiles"`
}

type SpeechErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
