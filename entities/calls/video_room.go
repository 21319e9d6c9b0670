package calls

import (
	"api/utils"
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"
)

const videoAPIBaseURL = "https://api.daily.co/v1"

type videoRoomResponse struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// createVideoRoom pede uma sala ao provedor de vídeo e devolve a URL dela.
// Qualquer falha devolve string vazia e fica só no log.
func createVideoRoom(title string, scheduledAt time.Time, durationMinutes int) string {
	apiKey := os.Getenv(utils.VIDEO_API_KEY)
	if apiKey == "" {
		return ""
	}

	// A sala expira uma hora depois do fim previsto da call.
	expiry := scheduledAt.Add(time.Duration(durationMinutes+60) * time.Minute)

	payload := map[string]any{
		"privacy": "private",
		"properties": map[string]any{
			"nbf": scheduledAt.Add(-15 * time.Minute).Unix(),
			"exp": expiry.Unix(),
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Println("erro ao montar payload da sala de vídeo:", err)
		return ""
	}

	req, err := http.NewRequest(http.MethodPost, videoAPIBaseURL+"/rooms", bytes.NewBuffer(body))
	if err != nil {
		log.Println("erro ao montar requisição da sala de vídeo:", err)
		return ""
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		log.Println("erro ao criar sala de vídeo para a call:", title, err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Println("provedor de vídeo devolveu status inesperado:", resp.StatusCode)
		return ""
	}

	room := videoRoomResponse{}
	if err := json.NewDecoder(resp.Body).Decode(&room); err != nil {
		log.Println("erro ao ler resposta do provedor de vídeo:", err)
		return ""
	}

	return room.URL
}
