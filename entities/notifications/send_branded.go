package notifications

import (
	"api/utils"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
)

const (
	TEMPLATE_FUNNEL_COMPLETED   = "funnel_completed"
	TEMPLATE_ENROLLMENT_CREATED = "enrollment_created"
	TEMPLATE_CALL_SCHEDULED     = "call_scheduled"

	emailAPIURL    = "https://api.resend.com/emails"
	defaultSender  = "Meu Coach <no-reply@meucoach.app>"
	brandColorHex  = "#1f6f5c"
	brandSignature = "Equipe Meu Coach"
)

func subjectFor(template string, vars map[string]any) string {
	product, _ := vars["product"].(string)

	switch template {
	case TEMPLATE_FUNNEL_COMPLETED:
		return fmt.Sprintf("Seu acesso foi liberado: %s", product)
	case TEMPLATE_ENROLLMENT_CREATED:
		return fmt.Sprintf("Bem-vindo(a) ao %s", product)
	case TEMPLATE_CALL_SCHEDULED:
		title, _ := vars["title"].(string)
		return fmt.Sprintf("Call marcada: %s", title)
	}
	return "Novidades do seu coach"
}

func bodyFor(template string, name string, vars map[string]any) string {
	greeting := "Olá"
	if name != "" {
		greeting = "Olá, " + name
	}

	product, _ := vars["product"].(string)

	switch template {
	case TEMPLATE_FUNNEL_COMPLETED:
		return fmt.Sprintf("%s! Sua jornada foi concluída e o acesso a <strong>%s</strong> já está liberado.", greeting, product)
	case TEMPLATE_ENROLLMENT_CREATED:
		return fmt.Sprintf("%s! Sua matrícula em <strong>%s</strong> foi criada. Bora começar?", greeting, product)
	case TEMPLATE_CALL_SCHEDULED:
		title, _ := vars["title"].(string)
		when, _ := vars["when"].(string)
		return fmt.Sprintf("%s! A call <strong>%s</strong> foi marcada para %s.", greeting, title, when)
	}
	return greeting + "!"
}

func brandedHTML(body string) string {
	return fmt.Sprintf(`<div style="font-family:sans-serif;max-width:560px;margin:0 auto">`+
		`<div style="background:%s;color:#fff;padding:16px 24px;border-radius:8px 8px 0 0">Meu Coach</div>`+
		`<div style="padding:24px;border:1px solid #eee;border-top:0;border-radius:0 0 8px 8px">`+
		`<p>%s</p><p style="color:#888;font-size:12px">%s</p></div></div>`,
		brandColorHex, body, brandSignature)
}

// SendBranded envia um e-mail transacional com a identidade visual da
// plataforma através do provedor de e-mail. Os chamadores tratam envio como
// melhor esforço: quem não puder falhar deve rodar isto em goroutine.
func SendBranded(to string, name string, template string, vars map[string]any) error {
	apiKey := os.Getenv(utils.EMAIL_API_KEY)
	if apiKey == "" {
		return fmt.Errorf("EMAIL_API_KEY não configurada")
	}

	payload := map[string]any{
		"from":    defaultSender,
		"to":      []string{to},
		"subject": subjectFor(template, vars),
		"html":    brandedHTML(bodyFor(template, name, vars)),
	}

	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, emailAPIURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("provedor de e-mail respondeu %d", resp.StatusCode)
	}

	return nil
}
