package main

import (
	"api/entities/billing"
	"api/entities/calls"
	"api/entities/chat"
	"api/entities/clients"
	"api/entities/enrollments"
	funnelsessions "api/entities/funnel_sessions"
	"api/entities/funnels"
	"api/entities/notifications"
	"api/entities/programs"
	"api/entities/squads"
	users "api/entities/users"
	"api/middlewares"
	"api/utils"
	"fmt"
	"net/http"
	"os"
	"time"
)

func main() {
	utils.LoadEnvVariables()

	env := os.Getenv(utils.ENV)
	if env == utils.ENV_RELEASE {
		fmt.Printf("\033[1;31;47m[ATENÇÃO] Rodando em ambiente de PRODUÇÃO!\033[0m\n")
	} else {
		fmt.Printf("[INFO] Ambiente atual: %s\n", env)
	}

	mux := http.NewServeMux()

	mux.Handle("GET /v1/account", middlewares.PlatformAuth(http.HandlerFunc(users.GetAccount)))
	mux.Handle("GET /v1/users/{accountId}", middlewares.PlatformAuth(http.HandlerFunc(users.GetOne)))

	mux.Handle("GET /v1/funnels", middlewares.PlatformAuth(http.HandlerFunc(funnels.GetAll)))
	mux.Handle("GET /v1/funnels/{id}", middlewares.PlatformAuth(http.HandlerFunc(funnels.GetOne)))
	mux.Handle("POST /v1/funnels", middlewares.PlatformAuth(http.HandlerFunc(funnels.CreateOne)))
	mux.Handle("PATCH /v1/funnels/{id}", middlewares.PlatformAuth(http.HandlerFunc(funnels.UpdateOne)))
	mux.Handle("DELETE /v1/funnels/{id}", middlewares.PlatformAuth(http.HandlerFunc(funnels.DeleteOne)))
	mux.HandleFunc("/v1/ws/funnels", funnels.FunnelWebSocketHandler)

	// As rotas de runtime são públicas: o visitante do funil ainda não tem conta.
	mux.HandleFunc("GET /v1/funnels/{id}/runtime", funnels.GetRuntime)
	mux.HandleFunc("POST /v1/funnel-sessions", funnelsessions.CreateOne)
	mux.HandleFunc("GET /v1/funnel-sessions/{id}", funnelsessions.GetOne)
	mux.HandleFunc("PATCH /v1/funnel-sessions/{id}", funnelsessions.UpdateOne)
	mux.HandleFunc("POST /v1/funnel-sessions/{id}/advance", funnelsessions.Advance)
	mux.HandleFunc("POST /v1/funnel-sessions/{id}/back", funnelsessions.Back)
	mux.Handle("POST /v1/funnel-sessions/{id}/link", middlewares.PlatformAuth(http.HandlerFunc(funnelsessions.LinkOne)))

	mux.Handle("GET /v1/programs", middlewares.PlatformAuth(http.HandlerFunc(programs.GetAll)))
	mux.Handle("GET /v1/programs/{id}", middlewares.PlatformAuth(http.HandlerFunc(programs.GetOne)))
	mux.Handle("POST /v1/programs", middlewares.PlatformAuth(http.HandlerFunc(programs.CreateOne)))
	mux.Handle("PATCH /v1/programs/{id}", middlewares.PlatformAuth(http.HandlerFunc(programs.UpdateOne)))
	mux.Handle("DELETE /v1/programs/{id}", middlewares.PlatformAuth(http.HandlerFunc(programs.DeleteOne)))
	mux.Handle("POST /v1/programs/sync", middlewares.PlatformAuth(http.HandlerFunc(programs.Sync)))

	mux.Handle("GET /v1/enrollments", middlewares.PlatformAuth(http.HandlerFunc(enrollments.GetAll)))
	mux.Handle("POST /v1/enrollments", middlewares.PlatformAuth(http.HandlerFunc(enrollments.CreateOne)))
	mux.Handle("PATCH /v1/enrollments/{id}", middlewares.PlatformAuth(http.HandlerFunc(enrollments.UpdateOne)))

	mux.Handle("GET /v1/squads", middlewares.PlatformAuth(http.HandlerFunc(squads.GetAll)))
	mux.Handle("GET /v1/squads/{id}", middlewares.PlatformAuth(http.HandlerFunc(squads.GetOne)))
	mux.Handle("POST /v1/squads", middlewares.PlatformAuth(http.HandlerFunc(squads.CreateOne)))
	mux.Handle("PATCH /v1/squads/{id}", middlewares.PlatformAuth(http.HandlerFunc(squads.UpdateOne)))
	mux.Handle("DELETE /v1/squads/{id}", middlewares.PlatformAuth(http.HandlerFunc(squads.DeleteOne)))
	mux.Handle("POST /v1/squads/{id}/members", middlewares.PlatformAuth(http.HandlerFunc(squads.AddMembers)))
	mux.Handle("DELETE /v1/squads/{id}/members/{memberId}", middlewares.PlatformAuth(http.HandlerFunc(squads.RemoveMember)))

	mux.Handle("GET /v1/calls", middlewares.PlatformAuth(http.HandlerFunc(calls.GetAll)))
	mux.Handle("GET /v1/calls/{id}", middlewares.PlatformAuth(http.HandlerFunc(calls.GetOne)))
	mux.Handle("POST /v1/calls", middlewares.PlatformAuth(http.HandlerFunc(calls.CreateOne)))
	mux.Handle("PATCH /v1/calls/{id}", middlewares.PlatformAuth(http.HandlerFunc(calls.UpdateOne)))
	mux.Handle("DELETE /v1/calls/{id}", middlewares.PlatformAuth(http.HandlerFunc(calls.DeleteOne)))

	mux.Handle("GET /v1/chat/{squadId}/messages", middlewares.PlatformAuth(http.HandlerFunc(chat.GetMessages)))
	mux.Handle("POST /v1/chat/messages", middlewares.PlatformAuth(http.HandlerFunc(chat.CreateOneMessage)))
	mux.Handle("POST /v1/chat/webhook", http.HandlerFunc(chat.Webhook))
	mux.HandleFunc("/v1/ws/chat/{squadId}", chat.ChatWebSocketHandler)

	mux.Handle("GET /v1/billing/invoices", middlewares.PlatformAuth(http.HandlerFunc(billing.GetAllInvoices)))
	mux.HandleFunc("POST /v1/billing/checkout", billing.CreateCheckout)
	mux.Handle("POST /v1/billing/webhook", http.HandlerFunc(billing.Webhook))

	mux.Handle("GET /v1/clients", middlewares.PlatformAuth(http.HandlerFunc(clients.GetAll)))
	mux.Handle("GET /v1/clients/{id}", middlewares.PlatformAuth(http.HandlerFunc(clients.GetOne)))

	mux.Handle("POST /v1/notifications/test", middlewares.PlatformAuth(http.HandlerFunc(notifications.SendTestEmail)))

	fmt.Printf("Servidor iniciado na porta %s às %s\n", os.Getenv(utils.PORT), time.Now().Format("2006-01-02 15:04:05"))
	http.ListenAndServe(fmt.Sprintf(":%s", os.Getenv(utils.PORT)), middlewares.SecurityHeaders(middlewares.Cors(mux)))
}
