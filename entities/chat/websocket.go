package chat

import (
	"api/schemas"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// As conexões ficam agrupadas por squad: cada sala só recebe as próprias mensagens.
var wsRooms = make(map[string]map[*websocket.Conn]bool)
var wsMutex sync.Mutex

func broadcastToSquad(squadID string, msg schemas.ChatMessage) {
	wsMutex.Lock()
	defer wsMutex.Unlock()
	for client := range wsRooms[squadID] {
		err := client.WriteJSON(msg)
		if err != nil {
			client.Close()
			delete(wsRooms[squadID], client)
		}
	}
}

func ChatWebSocketHandler(w http.ResponseWriter, r *http.Request) {
	squadID := r.PathValue("squadId")
	if squadID == "" {
		http.Error(w, "O parâmetro 'squadId' é obrigatório", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "Não foi possível fazer upgrade para websocket", http.StatusInternalServerError)
		return
	}
	defer conn.Close()

	wsMutex.Lock()
	if wsRooms[squadID] == nil {
		wsRooms[squadID] = make(map[*websocket.Conn]bool)
	}
	wsRooms[squadID][conn] = true
	wsMutex.Unlock()

	// O envio de mensagens passa pelo endpoint HTTP, que persiste antes de
	// transmitir. O loop aqui só mantém a conexão viva até o cliente sair.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	wsMutex.Lock()
	delete(wsRooms[squadID], conn)
	if len(wsRooms[squadID]) == 0 {
		delete(wsRooms, squadID)
	}
	wsMutex.Unlock()
}
