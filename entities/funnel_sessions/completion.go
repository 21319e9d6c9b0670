package funnelsessions

import (
	"api/entities/enrollments"
	"api/entities/funnels"
	"api/entities/notifications"
	"api/schemas"
	"log"
)

const DEFAULT_COMPLETION_REDIRECT = "/obrigado"

// ResolveRedirect decide para onde mandar o usuário depois do funil.
func ResolveRedirect(runtime *funnels.FunnelRuntime) string {
	if runtime.CompletionRedirect != "" {
		return runtime.CompletionRedirect
	}
	return DEFAULT_COMPLETION_REDIRECT
}

// LastRealStepIndex é o completed_step_index gravado na conclusão: o índice do
// último passo de verdade, -1 num funil sem passos.
func LastRealStepIndex(steps []schemas.FunnelStep) int {
	return len(steps) - 1
}

// runCompletionSideEffects concede o acesso configurado no funil e envia o
// e-mail de conclusão. Tudo em melhor esforço: falha aqui nunca bloqueia o
// usuário, que já recebeu o redirect.
func runCompletionSideEffects(session schemas.FunnelSession, runtime *funnels.FunnelRuntime) {
	if runtime.Product == nil {
		return
	}

	if session.LinkedAccountID == 0 {
		log.Println("[FUNNELS] Sessão concluída sem conta vinculada, acesso não concedido:", session.ID.Hex())
		return
	}

	created, err := enrollments.GrantAccess(runtime.CoachID, session.LinkedAccountID, runtime.Product.Type, runtime.Product.ID, session.ID)
	if err != nil {
		log.Println("[FUNNELS] Falha ao conceder acesso da sessão "+session.ID.Hex()+":", err)
		return
	}
	if !created {
		// Já tinha matrícula: não duplica o e-mail.
		return
	}

	email, _ := session.Data["email"].(string)
	if email == "" {
		return
	}
	name, _ := session.Data["name"].(string)

	err = notifications.SendBranded(email, name, notifications.TEMPLATE_FUNNEL_COMPLETED, map[string]any{
		"product": runtime.Name,
	})
	if err != nil {
		log.Println("[FUNNELS] Falha ao enviar e-mail de conclusão:", err)
	}
}
