package notifications

import (
	"api/utils"
	"encoding/json"
	"net/http"
)

type testEmailRequest struct {
	To       string `json:"to"`
	Name     string `json:"name"`
	Template string `json:"template"`
}

// SendTestEmail deixa o coach conferir o e-mail com a marca antes de ativar
// um funil. Aqui o envio é síncrono de propósito: o coach quer saber se falhou.
func SendTestEmail(w http.ResponseWriter, r *http.Request) {
	reqBody := testEmailRequest{}
	if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.NOTIFICATIONS_INVALID_REQUEST_DATA)
		return
	}

	if reqBody.To == "" {
		utils.SendResponse(w, http.StatusBadRequest, "O campo 'to' é obrigatório", nil, 0)
		return
	}

	template := reqBody.Template
	if template == "" {
		template = TEMPLATE_ENROLLMENT_CREATED
	}

	err := SendBranded(reqBody.To, reqBody.Name, template, map[string]any{
		"product": "Exemplo de Programa",
		"title":   "Call de exemplo",
		"when":    "amanhã às 10h",
	})
	if err != nil {
		utils.SendResponse(w, http.StatusBadGateway, "", nil, utils.CANNOT_SEND_NOTIFICATION_EMAIL)
		return
	}

	utils.SendResponse(w, http.StatusOK, "E-mail de teste enviado", nil, 0)
}
