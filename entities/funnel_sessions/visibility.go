package funnelsessions

import (
	"api/schemas"
	"log"
	"reflect"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// IsStepVisible avalia a regra show_if de um passo contra os dados acumulados
// da sessão. Passo sem regra é sempre visível. Operador desconhecido também
// libera o passo: esconder um passo por erro de configuração poderia travar o
// usuário no meio do funil.
func IsStepVisible(data map[string]any, rule *schemas.ShowIfRule) bool {
	if rule == nil {
		return true
	}

	fieldValue := data[rule.Field]

	switch rule.Operator {
	case schemas.SHOW_IF_OPERATOR_EQ:
		return valuesEqual(fieldValue, rule.Value)
	case schemas.SHOW_IF_OPERATOR_NEQ:
		return !valuesEqual(fieldValue, rule.Value)
	case schemas.SHOW_IF_OPERATOR_IN:
		return valueInList(fieldValue, rule.Value)
	case schemas.SHOW_IF_OPERATOR_NIN:
		return !valueInList(fieldValue, rule.Value)
	}

	log.Printf("[FUNNELS] Operador show_if desconhecido: %q (campo %q)", rule.Operator, rule.Field)
	return true
}

// Números chegam como float64 pelo JSON e como int32/int64 pelo BSON, então a
// comparação normaliza tipos numéricos antes de igualar.
func valuesEqual(a, b any) bool {
	numA, okA := toFloat(a)
	numB, okB := toFloat(b)
	if okA || okB {
		return okA && okB && numA == numB
	}
	return reflect.DeepEqual(a, b)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func valueInList(item, list any) bool {
	switch values := list.(type) {
	case []any:
		for _, v := range values {
			if valuesEqual(item, v) {
				return true
			}
		}
	case bson.A:
		for _, v := range values {
			if valuesEqual(item, v) {
				return true
			}
		}
	case []string:
		for _, v := range values {
			if valuesEqual(item, v) {
				return true
			}
		}
	}
	return false
}
