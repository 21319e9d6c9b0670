package users

import (
	"api/middlewares"
	"api/utils"
	"net/http"
)

// GetAccount devolve a conta já resolvida pelo middleware de autenticação,
// sem ir de novo na API de identidade.
func GetAccount(w http.ResponseWriter, r *http.Request) {
	account, ok := middlewares.GetAccount(r)
	if !ok {
		utils.SendResponse(w, http.StatusUnauthorized, "Conta não autenticada", nil, 0)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", account, 0)
}
