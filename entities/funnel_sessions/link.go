package funnelsessions

import "api/schemas"

// Resultado da tentativa de vincular uma sessão anônima a uma conta.
const (
	LinkApplied = iota
	LinkAlreadyLinked
	LinkConflict
)

// ResolveLink decide a transição Anônima → Vinculada. Ela acontece uma única
// vez: repetir com a mesma conta é no-op e uma conta diferente é conflito.
func ResolveLink(session *schemas.FunnelSession, accountID int) int {
	if session.LinkedAccountID == 0 {
		return LinkApplied
	}
	if session.LinkedAccountID == accountID {
		return LinkAlreadyLinked
	}
	return LinkConflict
}
