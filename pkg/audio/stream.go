package audio

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

// StreamingTTSService synthesizes speech over the ElevenLabs websocket
// API, writing audio chunks as they arrive instead of waiting for the
// whole clip.
type StreamingTTSService struct {
	apiKey  string
	voiceID string
}

func NewStreamingTTSService(apiKey, voiceID string) *StreamingTTSService {
	return &StreamingTTSService{
		apiKey:  apiKey,
		voiceID: voiceID,
	}
}

type streamInitMessage struct {
	Text          string                 `json:"text"`
	VoiceSettings map[string]interface{} `json:"voice_settings,omitempty"`
}

type streamChunk struct {
	Audio   string `json:"audio,omitempty"`
	IsFinal bool   `json:"isFinal,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (s *StreamingTTSService) StreamAudio(text string, out io.Writer) error {
	url := fmt.Sprintf(
		"wss://api.elevenlabs.io/v1/text-to-speech/%s/stream-input?model_id=eleven_multilingual_v2",
		s.voiceID,
	)

	dialer := websocket.DefaultDialer
	dialer.HandshakeTimeout = 10 * time.Second

	header := http.Header{}
	header.Set("xi-api-key", s.apiKey)

	conn, _, err := dialer.Dial(url, header)
	if err != nil {
		return fmt.Errorf("failed to connect to ElevenLabs: %w", err)
	}
	defer conn.Close()

	init := streamInitMessage{
		Text: " ",
		VoiceSettings: map[string]interface{}{
			"stability":        0.5,
			"similarity_boost": 0.8,
		},
	}
	if err := conn.WriteJSON(init); err != nil {
		return err
	}
	if err := conn.WriteJSON(streamInitMessage{Text: text + " "}); err != nil {
		return err
	}
	// empty text closes the input stream
	if err := conn.WriteJSON(streamInitMessage{Text: ""}); err != nil {
		return err
	}

	for {
		_ = conn.SetReadDeadline(time.Now().Add(30 * time.Second))
		_, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				return nil
			}
			return err
		}

		var chunk streamChunk
		if err := json.Unmarshal(payload, &chunk); err != nil {
			return err
		}
		if chunk.Error != "" {
			return fmt.Errorf("ElevenLabs stream error: %s", chunk.Error)
		}

		if chunk.Audio != "" {
			data, err := base64.StdEncoding.DecodeString(chunk.Audio)
			if err != nil {
				return err
			}
			if _, err := out.Write(data); err != nil {
				return err
			}
		}

		if chunk.IsFinal {
			return nil
		}
	}
}
