package domain

// Languages maps display names to synthesizer language codes.
var Languages = map[string]string{
	"English":    "en",
	"Spanish":    "es",
	"French":     "fr",
	"German":     "de",
	"Italian":    "it",
	"Portuguese": "pt",
	"Polish":     "pl",
	"Turkish":    "tr",
	"Russian":    "ru",
	"Dutch":      "nl",
	"Czech":      "cs",
	"Arabic":     "ar",
	"Chinese":    "zh-cn",
	"Japanese":   "ja",
	"Korean":     "ko",
}

// EmotionProfile carries the speed bias applied on top of the user-chosen
// playback speed.
type EmotionProfile struct {
	Speed float64 `json:"speed"`
}

var Emotions = map[string]EmotionProfile{
	"neutral":   {Speed: 1.0},
	"happy":     {Speed: 1.2},
	"sad":       {Speed: 0.8},
	"angry":     {Speed: 1.4},
	"fearful":   {Speed: 1.3},
	"disgust":   {Speed: 0.9},
	"surprised": {Speed: 1.5},
}

const (
	DefaultLanguageCode = "en"
	DefaultEmotion      = "neutral"

	MinSpeed = 0.5
	MaxSpeed = 2.0
)

// ClampSpeed bounds a user-supplied playback speed to the supported range.
func ClampSpeed(speed float64) float64 {
	if speed < MinSpeed {
		return MinSpeed
	}
	if speed > MaxSpeed {
		return MaxSpeed
	}
	return speed
}

// LanguageCode resolves a display name to its code, falling back to English
// for unknown or empty names.
func LanguageCode(displayName string) string {
	if code, ok := Languages[displayName]; ok {
		return code
	}
	return DefaultLanguageCode
}

// EffectiveSpeed combines an emotion's speed bias with the clamped user
// speed. Unknown emotions behave as neutral.
func EffectiveSpeed(emotion string, userSpeed float64) float64 {
	profile, ok := Emotions[emotion]
	if !ok {
		profile = Emotions[DefaultEmotion]
	}
	return profile.Speed * ClampSpeed(userSpeed)
}
