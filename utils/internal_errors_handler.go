package utils

import "fmt"

// O zero é reservado para "sem erro interno" em SendResponse, então a
// numeração começa em 1.
const (
	FUNNELS_INVALID_REQUEST_DATA = iota + 1
	INVALID_FUNNEL_ID_FORMAT
	CANNOT_CONNECT_TO_MONGODB
	CANNOT_INSERT_FUNNEL_TO_MONGODB
	CANNOT_FIND_FUNNELS_IN_MONGODB
	CANNOT_FIND_FUNNEL_BY_ID_IN_MONGODB
	CANNOT_UPDATE_FUNNEL_IN_MONGODB
	CANNOT_DELETE_FUNNEL_IN_MONGODB
	SESSIONS_INVALID_REQUEST_DATA
	INVALID_SESSION_ID_FORMAT
	CANNOT_INSERT_SESSION_TO_MONGODB
	CANNOT_FIND_SESSION_IN_MONGODB
	CANNOT_UPDATE_SESSION_IN_MONGODB
	PROGRAMS_INVALID_REQUEST_DATA
	INVALID_PROGRAM_ID_FORMAT
	CANNOT_INSERT_PROGRAM_TO_MONGODB
	CANNOT_FIND_PROGRAMS_IN_MONGODB
	CANNOT_UPDATE_PROGRAM_IN_MONGODB
	CANNOT_DELETE_PROGRAM_IN_MONGODB
	ENROLLMENTS_INVALID_REQUEST_DATA
	CANNOT_INSERT_ENROLLMENT_TO_MONGODB
	CANNOT_FIND_ENROLLMENTS_IN_MONGODB
	CANNOT_UPDATE_ENROLLMENT_IN_MONGODB
	SQUADS_INVALID_REQUEST_DATA
	INVALID_SQUAD_ID_FORMAT
	CANNOT_INSERT_SQUAD_TO_MONGODB
	CANNOT_FIND_SQUADS_IN_MONGODB
	CANNOT_UPDATE_SQUAD_IN_MONGODB
	CANNOT_DELETE_SQUAD_IN_MONGODB
	CALLS_INVALID_REQUEST_DATA
	INVALID_CALL_ID_FORMAT
	CANNOT_INSERT_CALL_TO_MONGODB
	CANNOT_FIND_CALLS_IN_MONGODB
	CANNOT_UPDATE_CALL_IN_MONGODB
	CANNOT_DELETE_CALL_IN_MONGODB
	CHAT_INVALID_REQUEST_DATA
	CANNOT_INSERT_CHAT_MESSAGE_TO_MONGODB
	CANNOT_FIND_CHAT_MESSAGES_IN_MONGODB
	BILLING_INVALID_REQUEST_DATA
	CANNOT_INSERT_INVOICE_TO_MONGODB
	CANNOT_FIND_INVOICES_IN_MONGODB
	CANNOT_UPDATE_INVOICE_IN_MONGODB
	CANNOT_CREATE_PAYMENT_CHECKOUT
	NOTIFICATIONS_INVALID_REQUEST_DATA
	CANNOT_SEND_NOTIFICATION_EMAIL
	CANNOT_FIND_USERS_IN_MONGODB
	CANNOT_FIND_CLIENTS_IN_MONGODB
)

func SendInternalError(internalErrorCode int) string {
	return fmt.Sprintf("Ocorreu um erro interno no servidor. Por favor, tente novamene mais tarde (Cod: %d)", internalErrorCode)
}
