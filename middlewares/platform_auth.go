package middlewares

import (
	"api/utils"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
)

type contextKey string

const AccountContextKey = contextKey("platform_account")

type Account struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PlatformAuth valida o token junto ao provedor de identidade da plataforma
// e guarda a conta autenticada no contexto da requisição.
func PlatformAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("Authorization")
		if token == "" {
			utils.SendResponse(w, http.StatusUnauthorized, "Token não informado", nil, 0)
			return
		}

		authURL := os.Getenv(utils.AUTH_API_URL)
		if authURL == "" {
			authURL = "http://localhost:8000"
		}
		accountURL := fmt.Sprintf("%s/api/account", authURL)

		req, err := http.NewRequest("GET", accountURL, nil)
		if err != nil {
			utils.SendResponse(w, http.StatusInternalServerError, "Erro ao criar requisição de autenticação", nil, 0)
			return
		}
		req.Header.Set("Authorization", token)

		client := &http.Client{}
		resp, err := client.Do(req)
		if err != nil {
			utils.SendResponse(w, http.StatusBadGateway, "Erro ao conectar na API de autenticação", nil, 0)
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			utils.SendResponse(w, http.StatusUnauthorized, "Token inválido ou conta não autenticada", nil, 0)
			return
		}

		account := Account{}
		err = json.NewDecoder(resp.Body).Decode(&account)
		if err != nil || account.ID == 0 || account.Name == "" || account.Email == "" {
			utils.SendResponse(w, http.StatusUnauthorized, "Conta inválida retornada pela autenticação", nil, 0)
			return
		}

		ctx := context.WithValue(r.Context(), AccountContextKey, account)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetAccount recupera a conta autenticada colocada no contexto pelo PlatformAuth.
func GetAccount(r *http.Request) (Account, bool) {
	account, ok := r.Context().Value(AccountContextKey).(Account)
	return account, ok
}
