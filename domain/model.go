package domain

// UploadedAsset is a file persisted by the asset store, addressable through
// the public uploads prefix.
type UploadedAsset struct {
	StoredName string
	URL        string
	SizeBytes  int64
}

// Scene is one entry of an uploaded script: a line of text plus the display
// name of the language it should be spoken in.
type Scene struct {
	Text     string `json:"text"`
	Language string `json:"language,omitempty"`
}

// SceneAudio couples a scene with the URL of its synthesized audio.
type SceneAudio struct {
	Scene    Scene  `json:"scene"`
	AudioURL string `json:"audioUrl"`
}

type VoiceSynthesisResult struct {
	AudioURL string
}

type AnimationResult struct {
	VideoURL string
}
