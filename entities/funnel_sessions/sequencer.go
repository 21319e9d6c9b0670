package funnelsessions

import "api/schemas"

// NextStepIndex caminha a partir de currentIndex+1 procurando o próximo passo
// visível, sempre na ordem em que os passos foram configurados. Passos de
// pagamento são pulados quando a sessão já tem o pagamento resolvido. Devolve
// len(steps) quando o funil terminou (sentinela terminal).
func NextStepIndex(currentIndex int, steps []schemas.FunnelStep, data map[string]any, skipPayment bool) int {
	for i := currentIndex + 1; i < len(steps); i++ {
		if steps[i].Type == schemas.STEP_TYPE_PAYMENT && skipPayment {
			continue
		}
		if !IsStepVisible(data, steps[i].ShowIf) {
			continue
		}
		return i
	}
	return len(steps)
}

// IsTerminal indica se o índice é a sentinela de fim do funil.
func IsTerminal(index int, steps []schemas.FunnelStep) bool {
	return index >= len(steps)
}

// PreviousStepIndex implementa o "voltar": sempre um passo para trás, sem
// lógica de pulo, travado em zero.
func PreviousStepIndex(currentIndex int) int {
	if currentIndex <= 0 {
		return 0
	}
	return currentIndex - 1
}

// PaymentResolved indica se a sessão pode pular passos de pagamento.
func PaymentResolved(data map[string]any) bool {
	paid, _ := data["payment_completed"].(bool)
	return paid
}

// KnownStepType separa os tipos que o front sabe renderizar dos que caem no
// fallback de configuração (com botão de continuar manual).
func KnownStepType(stepType string) bool {
	switch stepType {
	case schemas.STEP_TYPE_QUESTION,
		schemas.STEP_TYPE_SIGNUP,
		schemas.STEP_TYPE_PAYMENT,
		schemas.STEP_TYPE_SCHEDULING,
		schemas.STEP_TYPE_INFO,
		schemas.STEP_TYPE_SUCCESS:
		return true
	}
	return false
}
