package notifications

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubjectFor(t *testing.T) {
	vars := map[string]any{"product": "Programa 90 Dias", "title": "Check-in semanal"}

	assert.Equal(t, "Seu acesso foi liberado: Programa 90 Dias", subjectFor(TEMPLATE_FUNNEL_COMPLETED, vars))
	assert.Equal(t, "Bem-vindo(a) ao Programa 90 Dias", subjectFor(TEMPLATE_ENROLLMENT_CREATED, vars))
	assert.Equal(t, "Call marcada: Check-in semanal", subjectFor(TEMPLATE_CALL_SCHEDULED, vars))
	assert.Equal(t, "Novidades do seu coach", subjectFor("template_que_nao_existe", vars))
}

func TestBodyForUsesGreeting(t *testing.T) {
	vars := map[string]any{"product": "Squad Elite"}

	withName := bodyFor(TEMPLATE_ENROLLMENT_CREATED, "Ana", vars)
	assert.Contains(t, withName, "Olá, Ana")
	assert.Contains(t, withName, "Squad Elite")

	withoutName := bodyFor(TEMPLATE_ENROLLMENT_CREATED, "", vars)
	assert.Contains(t, withoutName, "Olá!")
}

func TestBodyForCallScheduledIncludesDate(t *testing.T) {
	// Mesmas chaves que o agendamento de calls monta ao avisar os membros.
	vars := map[string]any{
		"title": "Check-in semanal",
		"when":  "10/03/2025 14:30",
	}

	body := bodyFor(TEMPLATE_CALL_SCHEDULED, "Ana", vars)

	assert.Contains(t, body, "Check-in semanal")
	assert.Contains(t, body, "10/03/2025 14:30")
}

func TestBrandedHTMLWrapsBody(t *testing.T) {
	html := brandedHTML("conteúdo do e-mail")

	assert.Contains(t, html, "conteúdo do e-mail")
	assert.Contains(t, html, brandColorHex)
	assert.Contains(t, html, brandSignature)
}
